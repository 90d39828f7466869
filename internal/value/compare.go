package value

import "strings"

// Equal reports structural equality: same kind and recursively equal
// contents. Mapping equality ignores member order. Numbers compare by
// numeric value, so an integer equals a float with the same value.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolVal == b.boolVal
	case KindNumber:
		return a.floatVal == b.floatVal
	case KindString:
		return a.strVal == b.strVal
	case KindSequence:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.members) != len(b.members) {
			return false
		}
		for _, m := range a.members {
			other, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two values when an ordering exists: numbers against numbers
// (with integer/float promotion) and strings against strings. Every other
// combination is incomparable and reported via ok=false instead of an error,
// so ordering operators can treat a kind mismatch as a failed predicate.
func Compare(a, b Value) (int, bool) {
	if a.kind == KindNumber && b.kind == KindNumber {
		switch {
		case a.floatVal < b.floatVal:
			return -1, true
		case a.floatVal > b.floatVal:
			return 1, true
		default:
			return 0, true
		}
	}

	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.strVal, b.strVal), true
	}

	return 0, false
}
