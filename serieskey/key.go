// Package serieskey parses and renders the composite keys that identify
// market time-series records.
//
// A key has the form "PREFIX_yyyy.MM.dd HH:mm:ss". The prefix is opaque and
// may itself contain underscores; the timestamp is always the final
// underscore-separated segment. Timestamps carry no zone designator and are
// interpreted as UTC throughout.
package serieskey

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout of the timestamp segment. All fields are
// zero-padded and there is no zone designator.
const TimestampLayout = "2006.01.02 15:04:05"

var (
	ErrMissingTimestamp = errors.New("series key has no timestamp segment")
	ErrTimestampFormat  = errors.New("malformed series timestamp")
)

// Key is a parsed series key.
type Key struct {
	Prefix string
	Time   time.Time
}

// Parse splits s on underscores and reads the final segment as the
// timestamp; everything before it becomes the prefix. A key whose final
// segment does not match TimestampLayout exactly is rejected with
// ErrTimestampFormat.
func Parse(s string) (Key, error) {
	parts := strings.Split(s, "_")
	if len(parts) == 0 {
		return Key{}, ErrMissingTimestamp
	}
	ts := parts[len(parts)-1]
	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return Key{}, fmt.Errorf("%w %q: %w", ErrTimestampFormat, ts, err)
	}
	return Key{
		Prefix: strings.Join(parts[:len(parts)-1], "_"),
		Time:   t.UTC(),
	}, nil
}

// String renders the key back to its wire form. A key with an empty prefix
// renders as the bare timestamp, so "_2024.02.13 10:05:23" does not
// round-trip its leading underscore.
func (k Key) String() string {
	ts := k.Time.Format(TimestampLayout)
	if k.Prefix == "" {
		return ts
	}
	return k.Prefix + "_" + ts
}

// Truncate floors the key's timestamp to the precision bucket. The prefix is
// unchanged.
func (k Key) Truncate(p Precision) Key {
	return Key{Prefix: k.Prefix, Time: p.Truncate(k.Time)}
}
