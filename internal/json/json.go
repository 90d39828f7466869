// Package json decodes JSON text into document values and encodes them back.
//
// Decoding walks the encoding/json token stream instead of unmarshalling
// into map[string]any, which is what preserves mapping member order.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/jsonquery/internal/value"
)

var (
	// ErrParse is the sentinel error for malformed JSON input.
	ErrParse = errors.New("invalid JSON")

	// ErrDepth is returned when a document nests deeper than maxDepth.
	ErrDepth = errors.New("maximum nesting depth exceeded")
)

// maxDepth bounds recursion on adversarial input; well-formed documents stay
// far below it.
const maxDepth = 1000

// Parse decodes a complete JSON document into a Value. Trailing non-space
// content after the first value is an error; no partial value is returned on
// failure.
func Parse(input string) (value.Value, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	v, err := decodeValue(dec, tok, 0)
	if err != nil {
		return value.Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("%w: unexpected content after top-level value", ErrParse)
	}

	return v, nil
}

func decodeValue(dec *json.Decoder, tok json.Token, depth int) (value.Value, error) {
	if depth > maxDepth {
		return value.Value{}, ErrDepth
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec, depth)
		case '[':
			return decodeArray(dec, depth)
		default:
			return value.Value{}, fmt.Errorf("%w: unexpected delimiter %q", ErrParse, t.String())
		}
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		return decodeNumber(t)
	default:
		return value.Value{}, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func decodeObject(dec *json.Decoder, depth int) (value.Value, error) {
	var members []value.Member
	for {
		tok, err := dec.Token()
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrParse, err)
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return value.Mapping(members...), nil
		}

		key, ok := tok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: object key is not a string", ErrParse)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrParse, err)
		}

		child, err := decodeValue(dec, valueTok, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		members = append(members, value.Member{Key: key, Value: child})
	}
}

func decodeArray(dec *json.Decoder, depth int) (value.Value, error) {
	items := []value.Value{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %v", ErrParse, err)
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return value.Sequence(items...), nil
		}

		child, err := decodeValue(dec, tok, depth+1)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, child)
	}
}

// decodeNumber keeps integers as integers so formatting and statistics do
// not turn 30 into 30.0.
func decodeNumber(n json.Number) (value.Value, error) {
	if i, err := n.Int64(); err == nil {
		return value.Int(i), nil
	}

	f, err := n.Float64()
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: invalid number %q", ErrParse, n.String())
	}
	return value.Float(f), nil
}
