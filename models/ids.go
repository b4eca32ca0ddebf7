package models

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a random 128-bit identifier in its canonical text form.
func NewID() string {
	return uuid.NewString()
}

// Now returns the current UTC time at millisecond precision, the finest
// precision every storage driver round-trips.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NormalizeTime converts t to UTC at millisecond precision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
