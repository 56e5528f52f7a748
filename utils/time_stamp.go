package utils

import (
	"time"
)

// FormatISO renders t as an RFC 3339 instant in UTC, e.g.
//
//	2022-01-03T07:00:00Z
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// SeedFromClock derives a non-zero RNG seed from the wall clock.
func SeedFromClock(now time.Time) int64 {
	if s := now.UnixNano(); s != 0 {
		return s
	}
	return 1
}
