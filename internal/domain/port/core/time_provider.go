package core

import "time"

// TimeProvider abstracts time operations for the domain so entities and
// usecases stay deterministic under test.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
