package formatter

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jacoelho/jsonquery/internal/json"
	"github.com/jacoelho/jsonquery/internal/value"
)

// renderCSV writes a sequence of mappings as a table. The header comes from
// the first record's member order; cells missing from later records are
// empty. Non-tabular values fall back to compact JSON.
func renderCSV(v value.Value) (string, error) {
	items := v.Items()
	if v.Kind() != value.KindSequence || len(items) == 0 || items[0].Kind() != value.KindMapping {
		return json.Encode(v, false), nil
	}

	headers := items[0].Keys()

	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}

	for i, item := range items {
		if item.Kind() != value.KindMapping {
			return "", fmt.Errorf("%w: element %d is %s", ErrNotTabular, i, item.Kind())
		}
		row := make([]string, 0, len(headers))
		for _, h := range headers {
			cell, ok := item.Get(h)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, Scalar(cell))
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
