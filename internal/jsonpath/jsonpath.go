// Package jsonpath bridges $-prefixed query expressions to a standard
// RFC 9535 JSONPath implementation.
//
// The bridge works on plain decoded data, so numbers are normalized to
// float64 and mapping member order is not preserved through it; result
// object keys come back sorted for deterministic output. The native path
// language keeps both properties.
package jsonpath

import (
	"errors"
	"fmt"
	"sort"

	jp "github.com/theory/jsonpath"

	"github.com/jacoelho/jsonquery/internal/value"
)

// ErrInvalidPath is the sentinel error for malformed JSONPath expressions.
var ErrInvalidPath = errors.New("invalid JSONPath expression")

// Run selects from v using a standard JSONPath expression. A single match
// yields the matched value, multiple matches yield a sequence in selection
// order, and no match is absent.
func Run(v value.Value, expr string) (value.Value, bool, error) {
	path, err := jp.Parse(expr)
	if err != nil {
		return value.Value{}, false, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	results := path.Select(toData(v))
	switch len(results) {
	case 0:
		return value.Value{}, false, nil
	case 1:
		return fromData(results[0]), true, nil
	default:
		items := make([]value.Value, 0, len(results))
		for _, r := range results {
			items = append(items, fromData(r))
		}
		return value.Sequence(items...), true, nil
	}
}

// toData converts a Value into the map/slice shape the JSONPath library
// selects over.
func toData(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool()
	case value.KindNumber:
		return v.Float64()
	case value.KindString:
		return v.Str()
	case value.KindSequence:
		items := make([]any, 0, v.Len())
		for _, item := range v.Items() {
			items = append(items, toData(item))
		}
		return items
	case value.KindMapping:
		members := make(map[string]any, v.Len())
		for _, m := range v.Members() {
			members[m.Key] = toData(m.Value)
		}
		return members
	default:
		return nil
	}
}

func fromData(data any) value.Value {
	switch d := data.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(d)
	case float64:
		return value.Float(d)
	case string:
		return value.String(d)
	case []any:
		items := make([]value.Value, 0, len(d))
		for _, item := range d {
			items = append(items, fromData(item))
		}
		return value.Sequence(items...)
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]value.Member, 0, len(d))
		for _, k := range keys {
			members = append(members, value.Member{Key: k, Value: fromData(d[k])})
		}
		return value.Mapping(members...)
	default:
		return value.Null()
	}
}
