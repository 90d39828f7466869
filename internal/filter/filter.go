// Package filter parses and evaluates single-predicate filter expressions
// of the form "key <op> literal", e.g. `age > 25` or `email ~ "@corp.com"`.
package filter

import (
	"strconv"
	"strings"

	"github.com/jacoelho/jsonquery/internal/value"
)

// Operator is a comparison or regex operator token.
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpMatch          Operator = "~"
)

// operators in matching priority order: multi-character tokens first so
// ">=" is never mis-split at its ">" prefix.
var operators = []Operator{
	OpEqual,
	OpNotEqual,
	OpGreaterOrEqual,
	OpLessOrEqual,
	OpGreater,
	OpLess,
	OpMatch,
}

// Expression is a parsed (key, operator, literal) filter predicate.
type Expression struct {
	Key     string
	Op      Operator
	Literal value.Value
}

// Parse extracts a filter expression by splitting at the first occurrence of
// the earliest operator in the priority list found in the input. The boolean
// is false when no operator is present, in which case the caller treats the
// filter as a pass-through no-op rather than an error.
func Parse(input string) (*Expression, bool) {
	for _, op := range operators {
		idx := strings.Index(input, string(op))
		if idx < 0 {
			continue
		}
		return &Expression{
			Key:     strings.TrimSpace(input[:idx]),
			Op:      op,
			Literal: parseLiteral(input[idx+len(op):]),
		}, true
	}
	return nil, false
}

// parseLiteral coerces the raw right-hand side: quoted string unwrap first,
// then lowercase-only boolean and null words, then integer, then float,
// falling back to the raw string.
func parseLiteral(raw string) value.Value {
	s := strings.TrimSpace(raw)

	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return value.String(s[1 : len(s)-1])
		}
	}

	switch s {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	case "null", "none":
		return value.Null()
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float(f)
	}

	return value.String(s)
}
