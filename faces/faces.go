// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package faces

import (
	"errors"
	"fmt"
)

// DefaultSize is the number of faces in the original stimulus set.
const DefaultSize = 46

var (
	ErrOddCatalog      = errors.New("catalog size must be even")
	ErrCatalogTooSmall = errors.New("catalog needs at least 2 faces")
)

// Catalog is the fixed, ordered list of face identifiers shown in a session.
type Catalog struct {
	ids   []string
	index map[string]struct{}
}

// NewCatalog builds face_01 .. face_NN for the given size.
// Sizes that cannot be split into pairs are rejected here so that
// pairing never has to deal with a leftover face.
func NewCatalog(size int) (*Catalog, error) {
	if size < 2 {
		return nil, ErrCatalogTooSmall
	}
	if size%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddCatalog, size)
	}

	c := &Catalog{
		ids:   make([]string, size),
		index: make(map[string]struct{}, size),
	}
	for i := 0; i < size; i++ {
		id := FaceID(i + 1)
		c.ids[i] = id
		c.index[id] = struct{}{}
	}
	return c, nil
}

// Default returns the 46-face catalog.
func Default() *Catalog {
	c, err := NewCatalog(DefaultSize)
	if err != nil {
		panic(err)
	}
	return c
}

// FaceID formats the n-th face (1-based) as face_01, face_02, ...
func FaceID(n int) string {
	return fmt.Sprintf("face_%02d", n)
}

// IDs returns a copy of the identifiers in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Size is the number of faces, always even.
func (c *Catalog) Size() int {
	return len(c.ids)
}

// Contains reports whether id belongs to the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}
