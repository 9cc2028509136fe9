// Package exprfn implements the built-in function library exposed to the
// expression evaluator that runs over market time-series records.
//
// Values flow between record fields, the evaluator and the built-ins as a
// small tagged union: Empty, Int, Float, Boolean and String. Every function
// is pure, free of I/O and safe for concurrent use. Failures are reported
// through the closed Error taxonomy of this package; a documented set of
// conditions degrades softly instead, returning Empty, false or a default,
// and that split is part of the contract.
//
// The package does not parse or evaluate expressions. Registry exposes the
// built-ins as a passive name-to-function table for the dispatching engine.
package exprfn

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is the tagged union flowing through the function library. It is
// sealed: Empty, Int, Float, Boolean and String are the only variants.
// Variants are immutable; all conversions allocate fresh values.
type Value interface {
	isValue()

	// Kind reports the variant tag.
	Kind() Kind

	fmt.Stringer
	json.Marshaler
}

// Kind tags the variant of a Value.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindBoolean
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Empty is the null variant. A nil Value is treated as Empty at every
// function boundary.
type Empty struct{}

func (Empty) isValue() {}

func (Empty) Kind() Kind {
	return KindEmpty
}
func (Empty) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
func (Empty) String() string {
	return "empty"
}

// Int is a 64-bit signed integer.
type Int int64

func (Int) isValue() {}

func (Int) Kind() Kind {
	return KindInt
}
func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(i))
}
func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// Float is an IEEE-754 double.
type Float float64

func (Float) isValue() {}

func (Float) Kind() Kind {
	return KindFloat
}
func (f Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Boolean is a logical value.
type Boolean bool

func (Boolean) isValue() {}

func (Boolean) Kind() Kind {
	return KindBoolean
}
func (b Boolean) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

// String is a UTF-8 string.
type String string

func (String) isValue() {}

func (String) Kind() Kind {
	return KindString
}
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}
func (s String) String() string {
	return fmt.Sprintf("'%s'", string(s))
}

// orEmpty normalizes nil interface values at function boundaries.
func orEmpty(v Value) Value {
	if v == nil {
		return Empty{}
	}
	return v
}

// IsEmpty reports whether v is the Empty variant. A nil Value counts as
// Empty.
func IsEmpty(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Empty)
	return ok
}

// AsFloat projects v onto float64: Float yields its payload, Int is
// widened. Every other variant reports false with a zero value; range
// clipping depends on this projection never failing hard.
func AsFloat(v Value) (float64, bool) {
	switch v := orEmpty(v).(type) {
	case Float:
		return float64(v), true
	case Int:
		return float64(v), true
	}
	return 0, false
}

// AsBoolean projects v onto bool. Only the Boolean variant projects;
// everything else reports false.
func AsBoolean(v Value) (bool, bool) {
	if b, ok := orEmpty(v).(Boolean); ok {
		return bool(b), true
	}
	return false, false
}

// AsInt extracts an Int payload. Unlike AsFloat there is no widening and the
// failure is hard: any other variant is an InvalidArgumentType error.
func AsInt(v Value) (int64, error) {
	if i, ok := orEmpty(v).(Int); ok {
		return int64(i), nil
	}
	return 0, ErrInvalidArgumentType
}
