package exprfn

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tradekit/tickexpr-go/serieskey"
)

// IsNull maps Empty to Int(0) and passes every other value through
// untouched. The zero is deliberately numeric, not boolean: downstream
// expressions feed the result into arithmetic.
func IsNull(v Value) (Value, error) {
	if IsEmpty(v) {
		return Int(0), nil
	}
	return v, nil
}

// IsNullOr returns fallback when v is Empty, v otherwise. An Empty fallback
// is returned as-is.
func IsNullOr(v, fallback Value) (Value, error) {
	if IsEmpty(v) {
		return orEmpty(fallback), nil
	}
	return v, nil
}

// Negate flips the sign of numeric values and the truth of booleans. Empty
// stays Empty; a string cannot be negated and is a custom error naming the
// value.
func Negate(v Value) (Value, error) {
	switch v := orEmpty(v).(type) {
	case Empty:
		return Empty{}, nil
	case Int:
		return -v, nil
	case Float:
		return -v, nil
	case Boolean:
		return !v, nil
	default:
		return nil, customErrorf("cannot negate %s value %s", v.Kind(), v)
	}
}

// Abs returns the absolute value of Int and Float, propagates Empty, and
// rejects the remaining variants with InvalidArgumentType. The Int absolute
// of MinInt64 wraps.
func Abs(v Value) (Value, error) {
	switch v := orEmpty(v).(type) {
	case Empty:
		return Empty{}, nil
	case Int:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case Float:
		return Float(math.Abs(float64(v))), nil
	default:
		return nil, ErrInvalidArgumentType
	}
}

// SafeDivide divides numeric operands with every failure mode soft: a zero
// divisor or an Empty operand yields Empty, never an error and never a
// panic. Int by Int divides truncating; any mix involving Float widens and
// divides as Float. Non-numeric operands are InvalidArgumentType.
func SafeDivide(left, right Value) (Value, error) {
	left, right = orEmpty(left), orEmpty(right)
	if IsEmpty(left) || IsEmpty(right) {
		return Empty{}, nil
	}

	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			if r == 0 {
				return Empty{}, nil
			}
			if l == math.MinInt64 && r == -1 {
				// The only quotient that overflows; keep the wrapped value.
				return Int(math.MinInt64), nil
			}
			return l / r, nil
		case Float:
			if r == 0 {
				return Empty{}, nil
			}
			return Float(l) / r, nil
		}
	case Float:
		switch r := right.(type) {
		case Int:
			if r == 0 {
				return Empty{}, nil
			}
			return l / Float(r), nil
		case Float:
			if r == 0 {
				return Empty{}, nil
			}
			return l / r, nil
		}
	}
	return nil, ErrInvalidArgumentType
}

// ClipValueToRange clamps v into the symmetric range [-|bound|, |bound|].
// Both arguments pass through AsFloat with non-coercible variants counting
// as 0.0, so the result is always a Float and the function never fails.
func ClipValueToRange(v, bound Value) (Value, error) {
	f, _ := AsFloat(v)
	b, _ := AsFloat(bound)
	b = math.Abs(b)
	switch {
	case f > b:
		f = b
	case f < -b:
		f = -b
	}
	return Float(f), nil
}

// FallbackWithRangeClipping selects between a primary and a secondary
// signal and clips whichever is chosen. usePrimary passes through AsBoolean
// with non-boolean selectors counting as false. An Empty primary yields
// emptyDefault unclipped; an Empty secondary yields Float(0).
func FallbackWithRangeClipping(usePrimary, primary, secondary, bound, emptyDefault Value) (Value, error) {
	use, _ := AsBoolean(usePrimary)
	if use {
		if IsEmpty(primary) {
			return orEmpty(emptyDefault), nil
		}
		return ClipValueToRange(primary, bound)
	}
	if IsEmpty(secondary) {
		return Float(0), nil
	}
	return ClipValueToRange(secondary, bound)
}

// Substring slices msg by byte offset and length. A non-string msg or an
// out-of-bounds start yields String(""); the end index saturates at the end
// of msg, so a negative or oversized length takes the tail. The offsets must
// be Int, anything else is InvalidArgumentType. Never panics.
func Substring(msg, start, length Value) (Value, error) {
	s, ok := orEmpty(msg).(String)
	if !ok {
		return String(""), nil
	}

	startAt, err := AsInt(start)
	if err != nil {
		return nil, err
	}
	take, err := AsInt(length)
	if err != nil {
		return nil, err
	}

	// Negative offsets become huge unsigned values and fall out of bounds.
	from := uint64(startAt)
	n := uint64(len(s))
	if from >= n {
		return String(""), nil
	}
	to := from + uint64(take)
	if to < from || to > n {
		to = n
	}
	return s[int(from):int(to)], nil
}

// StartsWith reports whether msg begins with prefix. Any non-string
// argument makes the predicate false rather than an error.
func StartsWith(msg, prefix Value) (Value, error) {
	m, ok := orEmpty(msg).(String)
	if !ok {
		return Boolean(false), nil
	}
	p, ok := orEmpty(prefix).(String)
	if !ok {
		return Boolean(false), nil
	}
	return Boolean(strings.HasPrefix(string(m), string(p))), nil
}

// EndsWith is the suffix counterpart of StartsWith.
func EndsWith(msg, suffix Value) (Value, error) {
	m, ok := orEmpty(msg).(String)
	if !ok {
		return Boolean(false), nil
	}
	s, ok := orEmpty(suffix).(String)
	if !ok {
		return Boolean(false), nil
	}
	return Boolean(strings.HasSuffix(string(m), string(s))), nil
}

// Ternary selects then for a true condition and otherwise for a false one.
// Both branches are already evaluated by the caller; only the selection
// happens here. A non-boolean condition is a custom error.
func Ternary(cond, then, otherwise Value) (Value, error) {
	b, ok := orEmpty(cond).(Boolean)
	if !ok {
		return nil, customErrorf("First parameter must be a boolean")
	}
	if b {
		return orEmpty(then), nil
	}
	return orEmpty(otherwise), nil
}

// RoundDateToPrecision truncates the timestamp segment of a series key to a
// calendar bucket and re-renders the key with its prefix intact. Both
// arguments must be String. The key is parsed before the precision token is
// examined, so a malformed timestamp wins over an unknown token.
func RoundDateToPrecision(key, precision Value) (Value, error) {
	k, ok := orEmpty(key).(String)
	if !ok {
		return nil, ErrInvalidArgumentType
	}
	p, ok := orEmpty(precision).(String)
	if !ok {
		return nil, ErrInvalidArgumentType
	}

	parsed, err := serieskey.Parse(string(k))
	if err != nil {
		if errors.Is(err, serieskey.ErrMissingTimestamp) {
			return nil, &Error{
				Code:    CodeInvalidInputString,
				Message: fmt.Sprintf("series key %s has no timestamp segment", k),
				Err:     err,
			}
		}
		return nil, &Error{
			Code:    CodeInvalidDateFormat,
			Message: fmt.Sprintf("series key %s has no parsable timestamp", k),
			Err:     err,
		}
	}

	prec, err := serieskey.ParsePrecision(string(p))
	if err != nil {
		return nil, customErrorf("Precision %s is not recognised", string(p))
	}

	return String(parsed.Truncate(prec).String()), nil
}

// Max returns the greater operand under Compare, preferring the second on
// ties.
func Max(a, b Value) (Value, error) {
	a, b = orEmpty(a), orEmpty(b)
	if Compare(a, b) > 0 {
		return a, nil
	}
	return b, nil
}

// Min returns the lesser operand under Compare, preferring the second on
// ties.
func Min(a, b Value) (Value, error) {
	a, b = orEmpty(a), orEmpty(b)
	if Compare(a, b) < 0 {
		return a, nil
	}
	return b, nil
}
