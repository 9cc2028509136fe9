package exprfn

import (
	"github.com/iancoleman/strcase"
)

// Func is the uniform shape the dispatching engine binds by name. Adapters
// produced by Registry check their arity before delegating and never hold
// state, so a registry copy is safe to share between evaluations.
type Func func(args []Value) (Value, error)

// Registry returns a fresh table of all built-ins under their snake_case
// names. Callers may extend or shadow entries in the returned map without
// affecting other callers.
func Registry() map[string]Func {
	return map[string]Func{
		"is_null":                      arity1("is_null", IsNull),
		"is_null_or":                   arity2("is_null_or", IsNullOr),
		"negate":                       arity1("negate", Negate),
		"abs":                          arity1("abs", Abs),
		"safe_divide":                  arity2("safe_divide", SafeDivide),
		"clip_value_to_range":          arity2("clip_value_to_range", ClipValueToRange),
		"fallback_with_range_clipping": arity5("fallback_with_range_clipping", FallbackWithRangeClipping),
		"substring":                    arity3("substring", Substring),
		"starts_with":                  arity2("starts_with", StartsWith),
		"ends_with":                    arity2("ends_with", EndsWith),
		"ternary":                      arity3("ternary", Ternary),
		"round_date_to_precision":      arity2("round_date_to_precision", RoundDateToPrecision),
		"max":                          arity2("max", Max),
		"min":                          arity2("min", Min),
	}
}

var builtins = Registry()

// Lookup resolves a built-in by name. Names are normalized to snake_case
// first, so "isNullOr", "IsNullOr" and "is_null_or" all bind the same
// function.
func Lookup(name string) (Func, bool) {
	fn, ok := builtins[name]
	if !ok {
		fn, ok = builtins[strcase.ToSnake(name)]
	}
	return fn, ok
}

func arityError(name string, want, got int) *Error {
	return customErrorf("wrong number of arguments for %s: expected %d, got %d", name, want, got)
}

func arity1(name string, fn func(Value) (Value, error)) Func {
	return func(args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, arityError(name, 1, len(args))
		}
		return fn(args[0])
	}
}

func arity2(name string, fn func(Value, Value) (Value, error)) Func {
	return func(args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, arityError(name, 2, len(args))
		}
		return fn(args[0], args[1])
	}
}

func arity3(name string, fn func(Value, Value, Value) (Value, error)) Func {
	return func(args []Value) (Value, error) {
		if len(args) != 3 {
			return nil, arityError(name, 3, len(args))
		}
		return fn(args[0], args[1], args[2])
	}
}

func arity5(name string, fn func(Value, Value, Value, Value, Value) (Value, error)) Func {
	return func(args []Value) (Value, error) {
		if len(args) != 5 {
			return nil, arityError(name, 5, len(args))
		}
		return fn(args[0], args[1], args[2], args[3], args[4])
	}
}
