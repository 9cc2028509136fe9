package serieskey_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/tickexpr-go/serieskey"
)

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		tok  string
		want serieskey.Precision
	}{
		{"m1", serieskey.PrecisionMinute},
		{"M1", serieskey.PrecisionMinute},
		{"m5", serieskey.PrecisionFiveMinutes},
		{"m15", serieskey.PrecisionQuarterHour},
		{"M30", serieskey.PrecisionHalfHour},
		{"h1", serieskey.PrecisionHour},
		{"H1", serieskey.PrecisionHour},
		{"h4", serieskey.PrecisionFourHours},
		{"d1", serieskey.PrecisionDay},
		{"D1", serieskey.PrecisionDay},
		{"1w", serieskey.PrecisionWeek},
		{"1W", serieskey.PrecisionWeek},
		{"1m", serieskey.PrecisionMonth},
		{"1M", serieskey.PrecisionMonth},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			p, err := serieskey.ParsePrecision(tt.tok)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestParsePrecisionUnknown(t *testing.T) {
	for _, tok := range []string{"m60", "w1", "5m", "day", ""} {
		_, err := serieskey.ParsePrecision(tok)
		assert.ErrorIs(t, err, serieskey.ErrUnknownPrecision, "token %q", tok)
	}
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(serieskey.TimestampLayout, s)
	require.NoError(t, err)
	return v.UTC()
}

func TestPrecisionTruncate(t *testing.T) {
	tests := []struct {
		name string
		p    serieskey.Precision
		in   string
		want string
	}{
		{"minute", serieskey.PrecisionMinute, "2024.02.13 10:05:23", "2024.02.13 10:05:00"},
		{"five minutes", serieskey.PrecisionFiveMinutes, "2024.02.13 10:07:41", "2024.02.13 10:05:00"},
		{"quarter hour", serieskey.PrecisionQuarterHour, "2024.02.13 10:17:09", "2024.02.13 10:15:00"},
		{"half hour", serieskey.PrecisionHalfHour, "2024.02.13 10:47:59", "2024.02.13 10:30:00"},
		{"hour", serieskey.PrecisionHour, "2024.02.13 10:05:23", "2024.02.13 10:00:00"},
		{"four hours", serieskey.PrecisionFourHours, "2024.02.13 10:05:23", "2024.02.13 08:00:00"},
		{"four hours before dawn", serieskey.PrecisionFourHours, "2024.02.13 03:59:59", "2024.02.13 00:00:00"},
		{"day", serieskey.PrecisionDay, "2024.03.31 23:59:59", "2024.03.31 00:00:00"},
		{"week", serieskey.PrecisionWeek, "2024.02.13 10:05:23", "2024.02.11 00:00:00"},
		{"week on sunday", serieskey.PrecisionWeek, "2024.03.31 12:00:00", "2024.03.31 00:00:00"},
		{"week across year", serieskey.PrecisionWeek, "2024.01.01 00:00:01", "2023.12.31 00:00:00"},
		{"month", serieskey.PrecisionMonth, "2024.03.31 23:59:59", "2024.03.01 00:00:00"},
		{"month on first day", serieskey.PrecisionMonth, "2024.02.01 00:00:00", "2024.02.01 00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Truncate(mustTime(t, tt.in))
			assert.Equal(t, tt.want, got.Format(serieskey.TimestampLayout))
			assert.Equal(t, got, tt.p.Truncate(got), "truncation must be idempotent")
		})
	}
}

func TestPrecisionTruncateDropsSubSeconds(t *testing.T) {
	in := time.Date(2024, 2, 13, 10, 5, 23, 999_999_999, time.UTC)
	got := serieskey.PrecisionMinute.Truncate(in)
	assert.Equal(t, time.Date(2024, 2, 13, 10, 5, 0, 0, time.UTC), got)
}

func TestPrecisionTruncateNormalizesZone(t *testing.T) {
	// 01:30+03:00 is 22:30 UTC of the previous day.
	in := time.Date(2024, 2, 13, 1, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))
	got := serieskey.PrecisionDay.Truncate(in)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), got)
}
