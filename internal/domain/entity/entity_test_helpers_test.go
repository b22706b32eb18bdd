package entity

import "time"

// stubTimeProvider returns a fixed instant, keeping entity timestamps
// deterministic in tests
type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time                  { return s.now }
func (s *stubTimeProvider) Since(t time.Time) time.Duration { return s.now.Sub(t) }
