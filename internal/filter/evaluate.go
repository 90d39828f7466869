package filter

import (
	"github.com/dlclark/regexp2"

	"github.com/jacoelho/jsonquery/internal/regex"
	"github.com/jacoelho/jsonquery/internal/value"
)

// Evaluator applies filter expressions to candidate values, compiling regex
// literals through a shared cache.
type Evaluator struct {
	regexes *regex.Cache
}

// NewEvaluator returns an Evaluator backed by the given pattern cache.
func NewEvaluator(regexes *regex.Cache) *Evaluator {
	return &Evaluator{regexes: regexes}
}

// Match reports whether a single candidate satisfies the expression. Only
// mapping candidates that carry the expression key can match; everything
// else is excluded.
func (e *Evaluator) Match(candidate value.Value, expr *Expression) bool {
	if candidate.Kind() != value.KindMapping {
		return false
	}
	field, ok := candidate.Get(expr.Key)
	if !ok {
		return false
	}
	return e.compare(field, expr.Op, expr.Literal)
}

// compare applies the operator to the field value and the literal.
//
// Result-suppression rule: a kind mismatch under an ordering operator, a
// non-string operand under "~", or an invalid regex literal all yield false.
// Filters exclude silently instead of aborting a batch operation.
func (e *Evaluator) compare(actual value.Value, op Operator, literal value.Value) bool {
	switch op {
	case OpEqual:
		return value.Equal(actual, literal)
	case OpNotEqual:
		return !value.Equal(actual, literal)
	case OpMatch:
		return e.matchRegex(actual, literal)
	case OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual:
		order, ok := value.Compare(actual, literal)
		if !ok {
			return false
		}
		switch op {
		case OpGreater:
			return order > 0
		case OpLess:
			return order < 0
		case OpGreaterOrEqual:
			return order >= 0
		default:
			return order <= 0
		}
	default:
		return false
	}
}

// matchRegex searches the pattern anywhere in the field value; both sides
// must be strings.
func (e *Evaluator) matchRegex(actual, literal value.Value) bool {
	if actual.Kind() != value.KindString || literal.Kind() != value.KindString {
		return false
	}

	compiled, err := e.regexes.Compile(literal.Str(), regexp2.None)
	if err != nil {
		return false
	}

	matched, err := compiled.MatchString(actual.Str())
	return err == nil && matched
}

// Apply filters a collection. A sequence keeps the sub-sequence of matching
// elements, which may be empty but is still found. A mapping passes through
// unchanged when it matches and is absent otherwise. Any other kind is
// absent.
func (e *Evaluator) Apply(v value.Value, expr *Expression) (value.Value, bool) {
	switch v.Kind() {
	case value.KindSequence:
		kept := []value.Value{}
		for _, item := range v.Items() {
			if e.Match(item, expr) {
				kept = append(kept, item)
			}
		}
		return value.Sequence(kept...), true
	case value.KindMapping:
		if e.Match(v, expr) {
			return v, true
		}
		return value.Value{}, false
	default:
		return value.Value{}, false
	}
}
