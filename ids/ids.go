// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"strings"

	"github.com/google/uuid"
)

// SessionPrefix marks session tokens so they are recognisable in logs.
const SessionPrefix = "ses_"

// NewSessionID returns a short token like ses_1a2b3c4d.
func NewSessionID() string {
	return SessionPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// NewTrialID returns a random UUID string.
func NewTrialID() string {
	return uuid.NewString()
}
