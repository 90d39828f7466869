package json

import (
	"encoding/json"
	"strings"

	"github.com/jacoelho/jsonquery/internal/value"
)

const indentStep = "  "

// Encode renders a Value as JSON text, writing mapping members in stored
// order. With pretty enabled the output uses two-space indentation.
func Encode(v value.Value, pretty bool) string {
	var b strings.Builder
	encodeValue(&b, v, "", pretty)
	return b.String()
}

func encodeValue(b *strings.Builder, v value.Value, indent string, pretty bool) {
	switch v.Kind() {
	case value.KindNull:
		b.WriteString("null")
	case value.KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.KindNumber:
		b.WriteString(v.NumberString())
	case value.KindString:
		b.WriteString(quote(v.Str()))
	case value.KindSequence:
		encodeSequence(b, v, indent, pretty)
	case value.KindMapping:
		encodeMapping(b, v, indent, pretty)
	}
}

func encodeSequence(b *strings.Builder, v value.Value, indent string, pretty bool) {
	items := v.Items()
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}

	b.WriteByte('[')
	inner := indent + indentStep
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		if pretty {
			b.WriteByte('\n')
			b.WriteString(inner)
		}
		encodeValue(b, item, inner, pretty)
	}
	if pretty {
		b.WriteByte('\n')
		b.WriteString(indent)
	}
	b.WriteByte(']')
}

func encodeMapping(b *strings.Builder, v value.Value, indent string, pretty bool) {
	members := v.Members()
	if len(members) == 0 {
		b.WriteString("{}")
		return
	}

	b.WriteByte('{')
	inner := indent + indentStep
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		if pretty {
			b.WriteByte('\n')
			b.WriteString(inner)
		}
		b.WriteString(quote(m.Key))
		b.WriteByte(':')
		if pretty {
			b.WriteByte(' ')
		}
		encodeValue(b, m.Value, inner, pretty)
	}
	if pretty {
		b.WriteByte('\n')
		b.WriteString(indent)
	}
	b.WriteByte('}')
}

func quote(s string) string {
	// json.Marshal never fails for a string value.
	encoded, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(encoded)
}
