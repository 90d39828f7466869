package path

import "github.com/jacoelho/jsonquery/internal/value"

// Evaluate walks v along the component sequence, consuming one component per
// recursion. The boolean distinguishes "no value here" from a located null:
// an explicitly stored null is found, a missing key or out-of-range index is
// not.
//
// Behavior branches on the component kind and the current value kind:
//
//   - wildcard over a sequence fans evaluation out across elements and
//     collects found results in source order; wildcard over anything else is
//     absent, as is a wildcard whose fan-out finds nothing
//   - a field against a mapping descends into the member, against a sequence
//     it projects across the mapping elements that carry the key (so paths
//     can descend into a list of records without an explicit wildcard)
//   - an index against a sequence is bounds-checked element access; negative
//     indices are out of range
//   - every other combination is absent
func Evaluate(v value.Value, components []Component) (value.Value, bool) {
	if len(components) == 0 {
		return v, true
	}

	component := components[0]
	rest := components[1:]

	switch component.Kind {
	case ComponentWildcard:
		if v.Kind() != value.KindSequence {
			return value.Value{}, false
		}
		return collect(v.Items(), rest)

	case ComponentIndex:
		if v.Kind() != value.KindSequence {
			return value.Value{}, false
		}
		items := v.Items()
		if component.Index < 0 || component.Index >= len(items) {
			return value.Value{}, false
		}
		return Evaluate(items[component.Index], rest)

	case ComponentField:
		switch v.Kind() {
		case value.KindMapping:
			child, ok := v.Get(component.Name)
			if !ok {
				return value.Value{}, false
			}
			return Evaluate(child, rest)
		case value.KindSequence:
			return project(v.Items(), component.Name, rest)
		}
		return value.Value{}, false

	default:
		return value.Value{}, false
	}
}

// collect evaluates the remaining path against every element, keeping found
// results in order.
func collect(items []value.Value, rest []Component) (value.Value, bool) {
	var results []value.Value
	for _, item := range items {
		if r, ok := Evaluate(item, rest); ok {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return value.Value{}, false
	}
	return value.Sequence(results...), true
}

// project applies a field across a sequence of records, keeping results from
// the mapping elements that carry the key.
func project(items []value.Value, name string, rest []Component) (value.Value, bool) {
	var results []value.Value
	for _, item := range items {
		if item.Kind() != value.KindMapping {
			continue
		}
		child, ok := item.Get(name)
		if !ok {
			continue
		}
		if r, ok := Evaluate(child, rest); ok {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		return value.Value{}, false
	}
	return value.Sequence(results...), true
}
