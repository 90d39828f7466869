package formatter

import (
	"errors"
	"testing"

	"github.com/jacoelho/jsonquery/internal/value"
)

func records() value.Value {
	return value.Sequence(
		value.Mapping(
			value.Member{Key: "name", Value: value.String("alice")},
			value.Member{Key: "age", Value: value.Int(30)},
		),
		value.Mapping(
			value.Member{Key: "name", Value: value.String("bob")},
			value.Member{Key: "age", Value: value.Int(25)},
		),
	)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"json", "yaml", "csv", "keys", "values", "plain"} {
		if _, err := ParseFormat(name); err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", name, err)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("ParseFormat(xml) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	got, err := Render(records(), FormatJSON, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := `[{"name":"alice","age":30},{"name":"bob","age":25}]`
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	got, err := Render(records(), FormatYAML, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "- name: alice\n  age: 30\n- name: bob\n  age: 25"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	got, err := Render(records(), FormatCSV, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "name,age\nalice,30\nbob,25"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCSVMissingCells(t *testing.T) {
	t.Parallel()

	rows := value.Sequence(
		value.Mapping(
			value.Member{Key: "a", Value: value.Int(1)},
			value.Member{Key: "b", Value: value.Int(2)},
		),
		value.Mapping(value.Member{Key: "a", Value: value.Int(3)}),
	)

	got, err := Render(rows, FormatCSV, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "a,b\n1,2\n3,"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCSVNonTabularFallsBackToJSON(t *testing.T) {
	t.Parallel()

	got, err := Render(value.Int(42), FormatCSV, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "42" {
		t.Fatalf("Render() = %q, want compact JSON fallback", got)
	}
}

func TestRenderCSVMixedRowsError(t *testing.T) {
	t.Parallel()

	rows := value.Sequence(
		value.Mapping(value.Member{Key: "a", Value: value.Int(1)}),
		value.String("not a record"),
	)

	if _, err := Render(rows, FormatCSV, false); !errors.Is(err, ErrNotTabular) {
		t.Fatalf("Render() error = %v, want ErrNotTabular", err)
	}
}

func TestRenderKeys(t *testing.T) {
	t.Parallel()

	mapping := value.Mapping(
		value.Member{Key: "z", Value: value.Int(1)},
		value.Member{Key: "a", Value: value.Int(2)},
	)

	got, err := Render(mapping, FormatKeys, false)
	if err != nil {
		t.Fatalf("Render(mapping) error = %v", err)
	}
	if got != "z\na" {
		t.Fatalf("Render(mapping) = %q, want stored order", got)
	}

	got, err = Render(records(), FormatKeys, false)
	if err != nil {
		t.Fatalf("Render(records) error = %v", err)
	}
	if got != "name\nage" {
		t.Fatalf("Render(records) = %q, want first record keys", got)
	}

	if _, err := Render(value.Int(1), FormatKeys, false); !errors.Is(err, ErrNoKeys) {
		t.Fatalf("Render(scalar) error = %v, want ErrNoKeys", err)
	}
}

func TestRenderValues(t *testing.T) {
	t.Parallel()

	mapping := value.Mapping(
		value.Member{Key: "name", Value: value.String("alice")},
		value.Member{Key: "age", Value: value.Int(30)},
		value.Member{Key: "tags", Value: value.Sequence(value.String("x"))},
	)

	got, err := Render(mapping, FormatValues, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "alice\n30\n[\"x\"]"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderPlain(t *testing.T) {
	t.Parallel()

	got, err := Render(value.String("hello"), FormatPlain, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "hello" {
		t.Fatalf("Render(string) = %q, want unquoted text", got)
	}

	got, err = Render(records(), FormatPlain, false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != `[{"name":"alice","age":30},{"name":"bob","age":25}]` {
		t.Fatalf("Render(sequence) = %q, want compact JSON", got)
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{name: "null", v: value.Null(), want: "null"},
		{name: "bool", v: value.Bool(false), want: "false"},
		{name: "integer", v: value.Int(42), want: "42"},
		{name: "float", v: value.Float(2.5), want: "2.5"},
		{name: "string", v: value.String("x y"), want: "x y"},
		{name: "container", v: value.Sequence(value.Int(1)), want: "[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scalar(tt.v); got != tt.want {
				t.Fatalf("Scalar() = %q, want %q", got, tt.want)
			}
		})
	}
}
