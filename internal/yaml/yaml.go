// Package yaml parses a minimal, indentation-structured YAML dialect into
// document values.
//
// The dialect covers block mappings, block sequences, single-key mapping
// items inside sequences, comments and scalar coercion. Anchors, tags, flow
// collections and multi-document streams are out of scope.
package yaml

import (
	"strconv"
	"strings"

	"github.com/jacoelho/jsonquery/internal/value"
)

// Parse converts YAML dialect text into a Value. Input that yields no
// content parses to null. Malformed structure never fails: lines that do not
// fit the grammar are skipped.
func Parse(input string) value.Value {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	v, _ := parseBlock(lines, 0, 0)
	return v
}

// parseBlock consumes lines starting at index start whose indentation is at
// least indent, returning the parsed block and the index of the first line
// it did not consume. The cursor threading keeps deep documents linear
// instead of re-slicing the remaining lines on every recursion.
func parseBlock(lines []string, start, indent int) (value.Value, int) {
	var members []value.Member
	var items []value.Value
	var pendingKey string
	hasPending := false
	isSequence := false

	i := start
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}

		width := indentWidth(line)
		if width < indent {
			break
		}

		if width > indent {
			// Deeper indentation is only meaningful right after a key with
			// no inline value; anything else is malformed and skipped.
			if hasPending {
				nested, next := parseBlock(lines, i, width)
				members = setMember(members, pendingKey, nested)
				hasPending = false
				i = next
				continue
			}
			i++
			continue
		}

		if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
			isSequence = true
			item := strings.TrimSpace(rest)
			if key, inline, found := strings.Cut(item, ": "); found {
				items = append(items, value.Mapping(value.Member{
					Key:   strings.TrimSpace(key),
					Value: parseScalar(inline),
				}))
			} else {
				items = append(items, parseScalar(item))
			}
			i++
			continue
		}

		if key, inline, found := cutMappingEntry(trimmed); found {
			if inline != "" {
				members = setMember(members, key, parseScalar(inline))
			} else {
				pendingKey = key
				hasPending = true
			}
			i++
			continue
		}

		i++
	}

	// Once a block has produced a sequence item the whole block is a
	// sequence; mapping entries seen alongside are discarded.
	if isSequence {
		return value.Sequence(items...), i
	}
	if len(members) > 0 {
		return value.Mapping(members...), i
	}
	return value.Null(), i
}

// cutMappingEntry splits "key: value" on the first ": ", also accepting a
// bare trailing colon ("key:") as a key with no inline value.
func cutMappingEntry(line string) (key, inline string, ok bool) {
	if k, v, found := strings.Cut(line, ": "); found {
		return strings.TrimSpace(k), strings.TrimSpace(v), true
	}
	if k, found := strings.CutSuffix(line, ":"); found && !strings.Contains(k, ":") {
		return strings.TrimSpace(k), "", true
	}
	return "", "", false
}

// setMember stores a mapping entry with last-write-wins semantics, keeping
// the position of the first occurrence.
func setMember(members []value.Member, key string, v value.Value) []value.Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = v
			return members
		}
	}
	return append(members, value.Member{Key: key, Value: v})
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// parseScalar coerces a scalar token: boolean and null words
// (case-insensitive), integer, float, quoted string, raw string.
func parseScalar(raw string) value.Value {
	s := strings.TrimSpace(raw)

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return value.Bool(true)
	case "false", "no", "off":
		return value.Bool(false)
	case "null", "none", "~":
		return value.Null()
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float(f)
	}

	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return value.String(s[1 : len(s)-1])
		}
	}

	return value.String(s)
}
