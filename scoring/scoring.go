// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"

	"github.com/danielhkuo/nicer-face/models"
)

// NeutralPopularity is assumed for a face that has no stats row.
const NeutralPopularity = 0.5

// Index maps face_id to its aggregate counters.
type Index map[string]models.FaceStat

// NewIndex keys a stats listing by face_id.
func NewIndex(stats []models.FaceStat) Index {
	idx := make(Index, len(stats))
	for _, s := range stats {
		idx[s.FaceID] = s
	}
	return idx
}

// Popularity is the share of showings in which the face was picked.
func Popularity(s models.FaceStat) float64 {
	return float64(s.TimesSelected) / float64(max(s.TimesShown, 1))
}

// Popularity looks up a face, falling back to NeutralPopularity.
func (idx Index) Popularity(faceID string) float64 {
	s, ok := idx[faceID]
	if !ok {
		return NeutralPopularity
	}
	return Popularity(s)
}

// AgreementScore returns the percentage (0-100) of selections that went to
// a face picked at least half the time it is shown. Exactly 0.5 counts as
// agreement. No selections scores 0.
//
// The stats are expected to already include the session's own trials.
func AgreementScore(selections []string, idx Index) int {
	if len(selections) == 0 {
		return 0
	}

	agreements := 0
	for _, face := range selections {
		if idx.Popularity(face) >= NeutralPopularity {
			agreements++
		}
	}

	return int(math.Round(float64(agreements) / float64(len(selections)) * 100))
}

// NicenessPct is the selection rate as a percentage with one decimal.
// Unshown faces are 0.
func NicenessPct(s models.FaceStat) float64 {
	if s.TimesShown <= 0 {
		return 0
	}
	return math.Round(float64(s.TimesSelected)/float64(s.TimesShown)*1000) / 10
}
