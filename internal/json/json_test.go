package json

import (
	"errors"
	"strings"
	"testing"

	"github.com/jacoelho/jsonquery/internal/value"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  value.Value
	}{
		{name: "null", input: "null", want: value.Null()},
		{name: "bool", input: "true", want: value.Bool(true)},
		{name: "integer", input: "42", want: value.Int(42)},
		{name: "float", input: "2.5", want: value.Float(2.5)},
		{name: "string", input: `"hi"`, want: value.String("hi")},
		{name: "empty_object", input: "{}", want: value.Mapping()},
		{name: "empty_array", input: "[]", want: value.Sequence()},
		{
			name:  "nested",
			input: `{"a": {"b": [1, 2.5, "x"]}, "c": null}`,
			want: value.Mapping(
				value.Member{Key: "a", Value: value.Mapping(
					value.Member{Key: "b", Value: value.Sequence(
						value.Int(1), value.Float(2.5), value.String("x"),
					)},
				)},
				value.Member{Key: "c", Value: value.Null()},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !value.Equal(got, tt.want) {
				t.Fatalf("Parse() = %s, want %s", Encode(got, false), Encode(tt.want, false))
			}
		})
	}
}

func TestParsePreservesKeyOrder(t *testing.T) {
	t.Parallel()

	got, err := Parse(`{"z": 1, "a": 2, "m": 3}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	keys := got.Keys()
	want := []string{"z", "a", "m"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "malformed", input: "{"},
		{name: "trailing_content", input: "{} {}"},
		{name: "bare_word", input: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, ErrParse) {
				t.Fatalf("Parse(%q) error = %v, want ErrParse", tt.input, err)
			}
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	t.Parallel()

	deep := strings.Repeat("[", maxDepth+2) + strings.Repeat("]", maxDepth+2)
	if _, err := Parse(deep); !errors.Is(err, ErrDepth) {
		t.Fatalf("Parse(deep) error = %v, want ErrDepth", err)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"name":"Alice","scores":[1,2.5,3],"meta":{"active":true,"note":null}}`

	first, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	second, err := Parse(Encode(first, true))
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v", err)
	}

	if !value.Equal(first, second) {
		t.Fatal("round-trip changed the value")
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	v := value.Mapping(
		value.Member{Key: "name", Value: value.String("Alice")},
		value.Member{Key: "tags", Value: value.Sequence(value.String("x"), value.String("y"))},
	)

	compact := Encode(v, false)
	wantCompact := `{"name":"Alice","tags":["x","y"]}`
	if compact != wantCompact {
		t.Fatalf("Encode(compact) = %q, want %q", compact, wantCompact)
	}

	pretty := Encode(v, true)
	wantPretty := "{\n  \"name\": \"Alice\",\n  \"tags\": [\n    \"x\",\n    \"y\"\n  ]\n}"
	if pretty != wantPretty {
		t.Fatalf("Encode(pretty) = %q, want %q", pretty, wantPretty)
	}
}

func TestEncodeEscapesStrings(t *testing.T) {
	t.Parallel()

	got := Encode(value.String("a\"b\n"), false)
	want := `"a\"b\n"`
	if got != want {
		t.Fatalf("Encode() = %q, want %q", got, want)
	}
}
