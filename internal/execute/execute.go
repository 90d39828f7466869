// Package execute wires the pipeline: read input, parse, query, filter,
// then search, statistics or rendering, in that fixed order.
package execute

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/jsonquery/internal/config"
	"github.com/jacoelho/jsonquery/internal/exit"
	"github.com/jacoelho/jsonquery/internal/filter"
	"github.com/jacoelho/jsonquery/internal/formatter"
	"github.com/jacoelho/jsonquery/internal/json"
	"github.com/jacoelho/jsonquery/internal/jsonpath"
	"github.com/jacoelho/jsonquery/internal/path"
	"github.com/jacoelho/jsonquery/internal/regex"
	"github.com/jacoelho/jsonquery/internal/scan"
	"github.com/jacoelho/jsonquery/internal/value"
	"github.com/jacoelho/jsonquery/internal/yaml"
)

// Runner executes one query pipeline for a parsed configuration.
type Runner struct {
	cfg     *config.Config
	stdin   io.Reader
	filters *filter.Evaluator
	scanner *scan.Scanner
}

// New creates a Runner for the given configuration.
func New(cfg *config.Config) *Runner {
	regexes := regex.NewCache()
	return &Runner{
		cfg:     cfg,
		stdin:   os.Stdin,
		filters: filter.NewEvaluator(regexes),
		scanner: scan.NewScanner(regexes),
	}
}

// Run executes the pipeline and returns the outcome for main to print.
// Empty results exit 0 with a note on stderr; failures exit 1.
func (r *Runner) Run() *exit.Result {
	doc, result := r.load()
	if result != nil {
		return result
	}

	doc, result = r.query(doc)
	if result != nil {
		return result
	}

	doc, result = r.filter(doc)
	if result != nil {
		return result
	}

	if r.cfg.Search != "" {
		return r.search(doc)
	}

	if r.cfg.Stats {
		return r.stats(doc)
	}

	return r.render(doc)
}

// load reads the input and parses it as JSON or as the YAML dialect.
func (r *Runner) load() (value.Value, *exit.Result) {
	content, err := r.read()
	if err != nil {
		return value.Value{}, r.failure("Error reading input: %v", err)
	}

	if r.cfg.YAML {
		return yaml.Parse(content), nil
	}

	doc, err := json.Parse(content)
	if err != nil {
		return value.Value{}, r.failure("Invalid JSON: %v", err)
	}
	return doc, nil
}

func (r *Runner) read() (string, error) {
	if r.cfg.File == "-" {
		content, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(r.cfg.File)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// query applies the path expression when one was given. Expressions starting
// with '$' run through the standard JSONPath bridge instead of the native
// path language.
func (r *Runner) query(doc value.Value) (value.Value, *exit.Result) {
	if r.cfg.Query == "" {
		return doc, nil
	}

	if strings.HasPrefix(r.cfg.Query, "$") {
		selected, found, err := jsonpath.Run(doc, r.cfg.Query)
		if err != nil {
			return value.Value{}, r.failure("Query error: %v", err)
		}
		if !found {
			return value.Value{}, r.empty("No results found")
		}
		return selected, nil
	}

	selected, found := path.Evaluate(doc, path.Parse(r.cfg.Query))
	if !found {
		return value.Value{}, r.empty("No results found")
	}
	return selected, nil
}

// filter applies the filter expression when one was given. An expression
// with no recognized operator is a no-op and the data passes through.
func (r *Runner) filter(doc value.Value) (value.Value, *exit.Result) {
	if r.cfg.Filter == "" {
		return doc, nil
	}

	expr, ok := filter.Parse(r.cfg.Filter)
	if !ok {
		return doc, nil
	}

	kept, found := r.filters.Apply(doc, expr)
	if !found || (kept.Kind() == value.KindSequence && kept.Len() == 0) {
		return value.Value{}, r.empty("No results match filter")
	}
	return kept, nil
}

func (r *Runner) search(doc value.Value) *exit.Result {
	matches, err := r.scanner.Search(doc, r.cfg.Search, r.cfg.CaseSensitive)
	if err != nil {
		return r.failure("Search error: %v", err)
	}
	if len(matches) == 0 {
		return r.empty("No matches found")
	}

	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%s: %s\n", r.paint(colorCyan, m.Path), m.Text)
	}
	return exit.Success(b.String())
}

func (r *Runner) stats(doc value.Value) *exit.Result {
	summary, err := scan.Stats(doc)
	if errors.Is(err, scan.ErrNoNumericValues) {
		summary = value.Mapping(value.Member{
			Key:   "error",
			Value: value.String("No numeric values found"),
		})
	} else if err != nil {
		return r.failure("Stats error: %v", err)
	}

	return exit.Success(json.Encode(summary, r.cfg.Pretty) + "\n")
}

func (r *Runner) render(doc value.Value) *exit.Result {
	output, err := formatter.Render(doc, r.cfg.Format, r.cfg.Pretty)
	if err != nil {
		return r.failure("Output error: %v", err)
	}
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	return exit.Success(output)
}

func (r *Runner) failure(format string, a ...any) *exit.Result {
	message := fmt.Sprintf(format, a...)
	return exit.Error(r.paint(colorRed, "✗ "+message) + "\n")
}

func (r *Runner) empty(message string) *exit.Result {
	return exit.Warning(r.paint(colorYellow, message) + "\n")
}
