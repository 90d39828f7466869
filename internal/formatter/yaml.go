package formatter

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonquery/internal/value"
)

// renderYAML marshals through yaml.MapSlice so mapping member order
// survives encoding.
func renderYAML(v value.Value) (string, error) {
	payload, err := yaml.Marshal(toYAML(v))
	if err != nil {
		return "", fmt.Errorf("encode YAML: %w", err)
	}
	return strings.TrimRight(string(payload), "\n"), nil
}

func toYAML(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool()
	case value.KindNumber:
		if v.IsInt() {
			return v.Int64()
		}
		return v.Float64()
	case value.KindString:
		return v.Str()
	case value.KindSequence:
		items := make([]any, 0, v.Len())
		for _, item := range v.Items() {
			items = append(items, toYAML(item))
		}
		return items
	case value.KindMapping:
		members := make(yaml.MapSlice, 0, v.Len())
		for _, m := range v.Members() {
			members = append(members, yaml.MapItem{Key: m.Key, Value: toYAML(m.Value)})
		}
		return members
	default:
		return nil
	}
}
