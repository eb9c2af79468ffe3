package reconcile

import "time"

// Clock supplies the wall time stamped onto created and modified records.
// Injected so tests can pin timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. For tests.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}

// Timestamp renders a clock reading in the form stored on records.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
