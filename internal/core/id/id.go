// Package id provides UUIDv7 identifiers for stores, users and records.
// UUIDv7 is time-ordered, so ids sort by creation time.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// ID is the identifier type used by every entity.
type ID = uuid.UUID

// Nil is the zero ID.
var Nil = uuid.Nil

// New generates a new UUIDv7.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v
}

// Parse converts a string to ID.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string to ID and panics on error. Tests only.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// IsNil checks if ID is the zero value.
func IsNil(v ID) bool {
	return v == uuid.Nil
}

// ShortCode renders a human-friendly document number such as "ORD-0192A3F4".
// The prefix is followed by the first eight hex digits, which carry the
// millisecond timestamp of a v7 id.
func ShortCode(prefix string, v ID) string {
	return fmt.Sprintf("%s-%X", prefix, v[:4])
}
