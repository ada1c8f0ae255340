// Package util provides shared utility functions.
package util

import "github.com/google/uuid"

// NewComponentID returns a time-ordered UUIDv7 string. Ids are assigned once
// per logical component and reused across every update in a response, so they
// must sort by creation time for consumers replaying a stream.
func NewComponentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion is the only failure mode; a v4 id keeps the
		// stream going at the cost of ordering.
		return uuid.NewString()
	}
	return id.String()
}

// IsValidID reports whether s parses as a UUID of any version.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
