// Package value defines the in-memory representation of a parsed document
// node. Every other package operates exclusively on this type.
package value

import "strconv"

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Member is a single key/value entry of a mapping.
type Member struct {
	Key   string
	Value Value
}

// Value is a closed tagged union over document node variants. Values are
// immutable once constructed: parsers build them, evaluators only read them
// and produce new ones.
//
// The zero Value is Null.
type Value struct {
	kind     Kind
	boolVal  bool
	intVal   int64
	floatVal float64
	integer  bool
	strVal   string
	seq      []Value
	members  []Member
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Int returns an integer-typed number.
func Int(n int64) Value {
	return Value{kind: KindNumber, intVal: n, floatVal: float64(n), integer: true}
}

// Float returns a float-typed number.
func Float(f float64) Value {
	return Value{kind: KindNumber, floatVal: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// Sequence returns an ordered sequence of the given items. Element order is
// preserved as given.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Mapping returns a mapping with the given members. Duplicate keys follow
// last-write-wins semantics: the value is replaced in place, keeping the
// position of the first occurrence.
func Mapping(members ...Member) Value {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		replaced := false
		for i := range out {
			if out[i].Key == m.Key {
				out[i].Value = m.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, m)
		}
	}
	return Value{kind: KindMapping, members: out}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. Only meaningful for KindBool.
func (v Value) Bool() bool {
	return v.boolVal
}

// IsInt reports whether a number carries an integer representation.
func (v Value) IsInt() bool {
	return v.kind == KindNumber && v.integer
}

// Int64 returns the integer payload of an integer-typed number.
func (v Value) Int64() int64 {
	return v.intVal
}

// Float64 returns the numeric payload as float64, promoting integers.
func (v Value) Float64() float64 {
	return v.floatVal
}

// Str returns the string payload. Only meaningful for KindString.
func (v Value) Str() string {
	return v.strVal
}

// Items returns the elements of a sequence in order.
func (v Value) Items() []Value {
	return v.seq
}

// Members returns the entries of a mapping in insertion order.
func (v Value) Members() []Member {
	return v.members
}

// Len returns the number of elements of a sequence or members of a mapping,
// and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.members)
	default:
		return 0
	}
}

// Get looks up a mapping member by key. The boolean reports presence, so a
// stored null is distinguishable from a missing key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the mapping keys in insertion order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.members))
	for _, m := range v.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// NumberString renders a number without losing the integer/float distinction.
func (v Value) NumberString() string {
	if v.integer {
		return strconv.FormatInt(v.intVal, 10)
	}
	return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
}
