// Package path implements the dotted/bracketed query language: field access,
// integer indexing and wildcard expansion over sequences.
package path

import (
	"strconv"
	"strings"
)

// ComponentKind identifies one step of a parsed path.
type ComponentKind uint8

const (
	ComponentField ComponentKind = iota
	ComponentIndex
	ComponentWildcard
)

// Component is a single path step: a field name, an integer index, or the
// wildcard marker.
type Component struct {
	Kind  ComponentKind
	Name  string
	Index int
}

// Field returns a field-access component.
func Field(name string) Component {
	return Component{Kind: ComponentField, Name: name}
}

// Index returns an index-access component.
func Index(i int) Component {
	return Component{Kind: ComponentIndex, Index: i}
}

// Wildcard returns the wildcard component.
func Wildcard() Component {
	return Component{Kind: ComponentWildcard}
}

// Parse tokenizes a path expression such as "data.users[0].name" or
// "items[*]" in a single left-to-right scan.
//
// Dots flush the accumulated identifier as a field. A bracket group is read
// up to the next ']' without nesting or escape support; "[*]" is the
// wildcard, an integer content is an index, and anything else is a literal
// field key (which is how non-identifier keys are addressed). An unclosed
// bracket reads to the end of the string.
func Parse(expr string) []Component {
	var components []Component
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			components = append(components, Field(current.String()))
			current.Reset()
		}
	}

	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '.':
			flush()
		case '[':
			flush()
			j := i + 1
			for j < len(expr) && expr[j] != ']' {
				j++
			}
			content := expr[i+1 : j]
			switch {
			case content == "*":
				components = append(components, Wildcard())
			default:
				if n, err := strconv.Atoi(content); err == nil {
					components = append(components, Index(n))
				} else {
					components = append(components, Field(content))
				}
			}
			i = j
		default:
			current.WriteByte(expr[i])
		}
	}
	flush()

	return components
}
