// Package config parses command-line arguments into a validated run
// configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/jsonquery/internal/exit"
	"github.com/jacoelho/jsonquery/internal/formatter"
)

// Version is the tool version reported by -v/--version.
const Version = "1.0.0"

var (
	ErrNoArguments = errors.New("no arguments provided")
	ErrNoInputFile = errors.New("no input file specified")
	ErrTooManyArgs = errors.New("too many positional arguments")
)

// Config represents the complete configuration for a jsonquery run.
type Config struct {
	// Input
	File string // file path, or "-" for stdin
	YAML bool   // parse input with the YAML dialect parser

	// Pipeline
	Query         string // path or $-prefixed JSONPath expression
	Filter        string // filter expression, e.g. "age > 25"
	Search        string // regex searched across all string leaves
	CaseSensitive bool
	Stats         bool

	// Output
	Format formatter.Format
	Pretty bool
	Color  bool
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Usage and errors are rendered by this package, not the flag package.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		filterExpr    string
		searchExpr    string
		caseSensitive = fs.Bool("case-sensitive", false, "Case-sensitive search")
		stats         = fs.Bool("stats", false, "Calculate statistics on numeric values")
		format        = fs.String("format", "json", "Output format: json, yaml, csv, keys, values, plain")
		noPretty      = fs.Bool("no-pretty", false, "Disable pretty printing")
		asYAML        = fs.Bool("yaml", false, "Parse input as YAML")
		noColor       = fs.Bool("no-color", false, "Disable colored diagnostics")
		version       bool
	)

	fs.StringVar(&filterExpr, "filter", "", "Filter expression (e.g. 'age > 25')")
	fs.StringVar(&filterExpr, "f", "", "Filter expression (shorthand)")
	fs.StringVar(&searchExpr, "search", "", "Search pattern (regex)")
	fs.StringVar(&searchExpr, "s", "", "Search pattern (shorthand)")
	fs.BoolVar(&version, "version", false, "Show version information")
	fs.BoolVar(&version, "v", false, "Show version information (shorthand)")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	if version {
		return nil, exit.Success(fmt.Sprintf("jsonquery v%s\n", Version))
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoInputFile, Usage())
	}
	if len(positional) > 2 {
		return nil, exit.Errorf("Error: %v: %s\n\n%s", ErrTooManyArgs, strings.Join(positional[2:], " "), Usage())
	}

	outputFormat, err := formatter.ParseFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	cfg := &Config{
		File:          positional[0],
		YAML:          *asYAML || hasYAMLExtension(positional[0]),
		Filter:        filterExpr,
		Search:        searchExpr,
		CaseSensitive: *caseSensitive,
		Stats:         *stats,
		Format:        outputFormat,
		Pretty:        !*noPretty,
		Color:         !*noColor,
	}
	if len(positional) == 2 {
		cfg.Query = positional[1]
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return cfg, nil
}

// Validate checks that the input file exists; "-" means stdin and is always
// accepted.
func (c *Config) Validate() error {
	if c.File == "-" {
		return nil
	}
	if _, err := os.Stat(c.File); err != nil {
		return fmt.Errorf("input file %s not found: %w", c.File, err)
	}
	return nil
}

func hasYAMLExtension(file string) bool {
	if file == "-" {
		return false
	}
	return strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml")
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jsonquery - JSON/YAML query tool

Usage: jsonquery [options] <file> [query]

Arguments:
  file                    JSON/YAML file, or - for stdin
  query                   Query path (e.g. users[0].name, items[*].price,
                          or a standard JSONPath expression starting with $)

Options:
  -f, --filter EXPR       Filter expression (e.g. 'age > 25', 'email ~ "@corp.com"')
  -s, --search PATTERN    Search pattern (regex) over all string values
  --case-sensitive        Case-sensitive search
  --stats                 Calculate statistics on numeric values
  --format FORMAT         Output format: json, yaml, csv, keys, values, plain (default: json)
  --no-pretty             Disable pretty printing
  --yaml                  Parse input as YAML (implied by .yaml/.yml extension)
  --no-color              Disable colored diagnostics
  -h, --help              Show this help message
  -v, --version           Show version information

Examples:
  jsonquery data.json users[0].name         # Query a path
  jsonquery data.json 'items[*].price'      # Wildcard over a list
  jsonquery --filter 'age > 25' data.json users
  jsonquery --search '@example.com' data.json
  jsonquery --stats data.json 'items[*].price'
  jsonquery --format csv data.json users
  cat data.json | jsonquery - users[0]`
}
