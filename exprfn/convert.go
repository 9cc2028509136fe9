package exprfn

//go:generate go run github.com/tradekit/tickexpr-go/internal/cmd/generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// DecodeJSON decodes a single JSON scalar into a Value: null becomes Empty,
// numbers become Int or Float depending on their exact decimal form, bool
// and string map to their variants. Arrays and objects are rejected; the
// union has no aggregate variants.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &Error{
			Code:    CodeInvalidInputString,
			Message: fmt.Sprintf("malformed JSON scalar %q", data),
			Err:     err,
		}
	}
	if dec.More() {
		return nil, &Error{
			Code:    CodeInvalidInputString,
			Message: fmt.Sprintf("trailing data after JSON scalar %q", data),
		}
	}
	return FromAny(raw)
}

func uintValue(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return nil, &Error{
			Code:    CodeInvalidArgumentType,
			Message: fmt.Sprintf("unsigned value %d overflows Int", v),
		}
	}
	return Int(v), nil
}

func numberValue(n json.Number) (Value, error) {
	d, _, err := apd.NewFromString(n.String())
	if err != nil {
		return nil, &Error{
			Code:    CodeInvalidInputString,
			Message: fmt.Sprintf("malformed number %q", n.String()),
			Err:     err,
		}
	}
	return decimalValue(d)
}

// decimalValue picks Int for exact integers that fit int64 and Float for
// everything else. The fraction test is decimal, not binary, so "1e2" and
// "100.00" both come back as Int(100).
func decimalValue(d *apd.Decimal) (Value, error) {
	if d == nil {
		return Empty{}, nil
	}

	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	if frac.IsZero() {
		if i, err := integ.Int64(); err == nil {
			return Int(i), nil
		}
	}

	f, err := d.Float64()
	if err != nil {
		return nil, &Error{
			Code:    CodeInvalidInputString,
			Message: fmt.Sprintf("number %s does not fit a float", d),
			Err:     err,
		}
	}
	return Float(f), nil
}
