package serieskey

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Precision selects a calendar-aligned truncation bucket for series
// timestamps.
type Precision string

const (
	PrecisionMinute      Precision = "m1"
	PrecisionFiveMinutes Precision = "m5"
	PrecisionQuarterHour Precision = "m15"
	PrecisionHalfHour    Precision = "m30"
	PrecisionHour        Precision = "h1"
	PrecisionFourHours   Precision = "h4"
	PrecisionDay         Precision = "d1"
	PrecisionWeek        Precision = "1w"
	PrecisionMonth       Precision = "1M"
)

var ErrUnknownPrecision = errors.New("unknown precision")

// ParsePrecision matches a precision token case-insensitively, so "M15",
// "m15", "1w", "1W", "1m" and "1M" are all valid. Unknown tokens are
// rejected with ErrUnknownPrecision.
func ParsePrecision(tok string) (Precision, error) {
	switch strings.ToLower(tok) {
	case "m1":
		return PrecisionMinute, nil
	case "m5":
		return PrecisionFiveMinutes, nil
	case "m15":
		return PrecisionQuarterHour, nil
	case "m30":
		return PrecisionHalfHour, nil
	case "h1":
		return PrecisionHour, nil
	case "h4":
		return PrecisionFourHours, nil
	case "d1":
		return PrecisionDay, nil
	case "1w":
		return PrecisionWeek, nil
	case "1m":
		return PrecisionMonth, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPrecision, tok)
}

// Truncate floors t to the start of its bucket. Buckets are aligned to the
// calendar in UTC, not to the Unix epoch: weeks start on Sunday and months
// on their first day. Truncation is idempotent; sub-second components are
// always dropped.
func (p Precision) Truncate(t time.Time) time.Time {
	t = t.UTC()
	year, month, day := t.Date()
	switch p {
	case PrecisionMinute:
		return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, time.UTC)
	case PrecisionFiveMinutes:
		return time.Date(year, month, day, t.Hour(), t.Minute()/5*5, 0, 0, time.UTC)
	case PrecisionQuarterHour:
		return time.Date(year, month, day, t.Hour(), t.Minute()/15*15, 0, 0, time.UTC)
	case PrecisionHalfHour:
		return time.Date(year, month, day, t.Hour(), t.Minute()/30*30, 0, 0, time.UTC)
	case PrecisionHour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, time.UTC)
	case PrecisionFourHours:
		return time.Date(year, month, day, t.Hour()/4*4, 0, 0, 0, time.UTC)
	case PrecisionDay:
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	case PrecisionWeek:
		sunday := t.AddDate(0, 0, -int(t.Weekday()))
		y, m, d := sunday.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case PrecisionMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}
