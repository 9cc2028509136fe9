package exprfn

import "strings"

// Compare returns -1, 0 or +1 and is total over the union. Int/Float pairs
// compare numerically with the Int widened; same-variant pairs compare
// naturally (false sorts before true, strings by byte order). A Float
// comparison involving NaN reports 0. Remaining cross-variant pairs fall
// back to a fixed variant rank so Max and Min stay total; callers must not
// rely on that rank.
func Compare(a, b Value) int {
	a, b = orEmpty(a), orEmpty(b)

	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return compareInt64(int64(ai), int64(bi))
		}
	}
	if isNumeric(a) && isNumeric(b) {
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		return compareFloat64(af, bf)
	}
	if a.Kind() != b.Kind() {
		return compareInts(variantRank(a.Kind()), variantRank(b.Kind()))
	}

	switch a := a.(type) {
	case Boolean:
		return compareBools(bool(a), bool(b.(Boolean)))
	case String:
		return strings.Compare(string(a), string(b.(String)))
	}
	return 0 // Empty vs Empty
}

// Equal reports payload equality with the same Int/Float widening as
// Compare. NaN is not equal to anything, itself included.
func Equal(a, b Value) bool {
	a, b = orEmpty(a), orEmpty(b)

	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai == bi
		}
	}
	if isNumeric(a) && isNumeric(b) {
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		return af == bf
	}
	return a == b
}

func isNumeric(v Value) bool {
	k := v.Kind()
	return k == KindInt || k == KindFloat
}

// variantRank fixes an arbitrary order between variants that have no
// meaningful mutual order. The numeric kinds share a rank; they never reach
// it because Compare widens them first.
func variantRank(k Kind) int {
	switch k {
	case KindString:
		return 0
	case KindFloat, KindInt:
		return 1
	case KindBoolean:
		return 2
	}
	return 3
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}
