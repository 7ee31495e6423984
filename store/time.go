package store

import "time"

// Timestamps live in the database as unix milliseconds, which both the
// postgres and sqlite drivers handle as plain integers.

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// now returns the current time at the precision the database keeps, so
// returned records match what a later read would see.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
