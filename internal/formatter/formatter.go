// Package formatter renders result values as json, yaml, csv, keys, values
// or plain text.
package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacoelho/jsonquery/internal/json"
	"github.com/jacoelho/jsonquery/internal/value"
)

var (
	// ErrUnsupportedFormat is returned for unknown format names.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrNoKeys is returned when the keys format is asked of a value that
	// has none.
	ErrNoKeys = errors.New("value has no keys")

	// ErrNotTabular is returned when a csv row is not a mapping.
	ErrNotTabular = errors.New("csv requires a sequence of mappings")
)

// Format selects an output rendering.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatCSV    Format = "csv"
	FormatKeys   Format = "keys"
	FormatValues Format = "values"
	FormatPlain  Format = "plain"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatJSON, FormatYAML, FormatCSV, FormatKeys, FormatValues, FormatPlain:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Render formats v. Pretty printing only affects the json and plain formats.
func Render(v value.Value, format Format, pretty bool) (string, error) {
	switch format {
	case FormatJSON:
		return json.Encode(v, pretty), nil
	case FormatYAML:
		return renderYAML(v)
	case FormatCSV:
		return renderCSV(v)
	case FormatKeys:
		return renderKeys(v)
	case FormatValues:
		return renderValues(v), nil
	case FormatPlain:
		return renderPlain(v, pretty), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// renderKeys lists mapping keys one per line. For a sequence of records the
// keys of the first record stand in for the table header.
func renderKeys(v value.Value) (string, error) {
	switch v.Kind() {
	case value.KindMapping:
		return strings.Join(v.Keys(), "\n"), nil
	case value.KindSequence:
		items := v.Items()
		if len(items) > 0 && items[0].Kind() == value.KindMapping {
			return strings.Join(items[0].Keys(), "\n"), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoKeys, v.Kind())
}

// renderValues lists mapping values or sequence elements one per line;
// anything else renders as a single scalar line.
func renderValues(v value.Value) string {
	switch v.Kind() {
	case value.KindMapping:
		lines := make([]string, 0, v.Len())
		for _, m := range v.Members() {
			lines = append(lines, Scalar(m.Value))
		}
		return strings.Join(lines, "\n")
	case value.KindSequence:
		lines := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			lines = append(lines, Scalar(item))
		}
		return strings.Join(lines, "\n")
	default:
		return Scalar(v)
	}
}

func renderPlain(v value.Value, pretty bool) string {
	switch v.Kind() {
	case value.KindSequence, value.KindMapping:
		return json.Encode(v, pretty)
	default:
		return Scalar(v)
	}
}

// Scalar renders a value as bare text: strings without quotes, numbers
// keeping their integer/float distinction, containers as compact JSON.
func Scalar(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "null"
	case value.KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case value.KindNumber:
		return v.NumberString()
	case value.KindString:
		return v.Str()
	default:
		return json.Encode(v, false)
	}
}
