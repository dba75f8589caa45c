// Copyright (c) 2024 Neomantra Corp

package itchlob

import (
	"fmt"
	"time"
)

// Timestamp is a nanosecond-resolution, totally ordered instant. It wraps a
// plain nanosecond count since the Unix epoch rather than time.Time so that
// comparisons and arithmetic on the hot dispatch path (§4.G) stay branch-free
// integer ops; wall-clock projection is a deliberate, explicit conversion.
type Timestamp int64

// FromCalendarDate builds a Timestamp from a calendar date (time of day is
// ignored) plus a nanosecond offset within that date — the construction the
// spec requires for both ITCH 5.0 (offset = nanos since midnight) and ITCH
// 4.1 (offset = seconds-marker*1e9 + inner timestamp).
func FromCalendarDate(date time.Time, offsetNanos int64) Timestamp {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return Timestamp(midnight.UnixNano() + offsetNanos)
}

// Sub returns the signed duration t - u.
func (t Timestamp) Sub(u Timestamp) time.Duration {
	return time.Duration(int64(t) - int64(u))
}

func (t Timestamp) Before(u Timestamp) bool { return t < u }
func (t Timestamp) After(u Timestamp) bool  { return t > u }

// Time projects the Timestamp to a wall-clock time.Time in UTC.
func (t Timestamp) Time() time.Time {
	secs := int64(t) / 1e9
	nanos := int64(t) % 1e9
	return time.Unix(secs, nanos).UTC()
}

// String renders YYYY-MM-DD HH:MM:SS.uuuuuu, microsecond-truncated per §3.
func (t Timestamp) String() string {
	wt := t.Time()
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%06d",
		wt.Year(), wt.Month(), wt.Day(), wt.Hour(), wt.Minute(), wt.Second(), wt.Nanosecond()/1000)
}
