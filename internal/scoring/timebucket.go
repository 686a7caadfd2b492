package scoring

import "time"

// Bucket is the granularity a date range is summarized with.
type Bucket int

const (
	BucketDaily Bucket = iota
	BucketWeekly
)

func (b Bucket) String() string {
	if b == BucketWeekly {
		return "weekly"
	}
	return "daily"
}

// maxDailyRangeDays is the widest range, in whole days, still
// summarized per day. Anything wider rolls up into weeks.
const maxDailyRangeDays = 31

// ResolveBucket decides whether a range is summarized daily or weekly.
func ResolveBucket(start, end time.Time) Bucket {
	days := int(Midnight(end).Sub(Midnight(start)).Hours() / 24)
	if days <= maxDailyRangeDays {
		return BucketDaily
	}
	return BucketWeekly
}

// Midnight truncates t to 00:00 UTC of its calendar date.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart truncates t to the Monday of its ISO week at midnight UTC.
func WeekStart(t time.Time) time.Time {
	d := Midnight(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}
