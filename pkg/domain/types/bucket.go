package types

import "time"

// TimeBucket is a calendar granularity for aggregating loss events
type TimeBucket string

const (
	// BucketDaily groups events by calendar day
	BucketDaily TimeBucket = "daily"
	// BucketWeekly groups events by ISO week (Monday start)
	BucketWeekly TimeBucket = "weekly"
	// BucketMonthly groups events by calendar month
	BucketMonthly TimeBucket = "monthly"
	// BucketQuarterly groups events by calendar quarter
	BucketQuarterly TimeBucket = "quarterly"
)

// String returns the string representation
func (b TimeBucket) String() string {
	return string(b)
}

// IsValid checks if the bucket is a known value
func (b TimeBucket) IsValid() bool {
	switch b {
	case BucketDaily, BucketWeekly, BucketMonthly, BucketQuarterly:
		return true
	}
	return false
}

// Truncate returns the start of the bucket containing t, in t's location.
func (b TimeBucket) Truncate(t time.Time) time.Time {
	switch b {
	case BucketDaily:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case BucketWeekly:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -offset)
	case BucketMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case BucketQuarterly:
		q := (int(t.Month()) - 1) / 3
		return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, t.Location())
	}
	return t
}

// AllTimeBuckets returns all known time buckets
func AllTimeBuckets() []TimeBucket {
	return []TimeBucket{BucketDaily, BucketWeekly, BucketMonthly, BucketQuarterly}
}
