// Package scan provides the recursive tree walks: regex search over string
// leaves and numeric collection for statistics.
package scan

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"

	"github.com/jacoelho/jsonquery/internal/regex"
	"github.com/jacoelho/jsonquery/internal/value"
)

// ErrNoNumericValues is returned by Stats when the document contains no
// number leaves. It is a reportable condition, not a failure.
var ErrNoNumericValues = errors.New("no numeric values")

// Match is one search hit: the materialized path of a string leaf and its
// content.
type Match struct {
	Path string
	Text string
}

// Scanner runs tree walks, compiling search patterns through a shared cache.
type Scanner struct {
	regexes *regex.Cache
}

// NewScanner returns a Scanner backed by the given pattern cache.
func NewScanner(regexes *regex.Cache) *Scanner {
	return &Scanner{regexes: regexes}
}

// Search walks v depth-first in pre-order and returns every string leaf the
// pattern matches anywhere, paired with its materialized path. Mapping
// members are visited in stored order and build "parent.key" paths, sequence
// elements build "parent[index]" paths. Matching is case-insensitive unless
// caseSensitive is set. An invalid pattern is an error.
func (s *Scanner) Search(v value.Value, pattern string, caseSensitive bool) ([]Match, error) {
	options := regexp2.RegexOptions(regexp2.IgnoreCase)
	if caseSensitive {
		options = regexp2.None
	}

	compiled, err := s.regexes.Compile(pattern, options)
	if err != nil {
		return nil, err
	}

	var matches []Match
	if err := searchWalk(v, "", compiled, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func searchWalk(v value.Value, path string, re *regexp2.Regexp, matches *[]Match) error {
	switch v.Kind() {
	case value.KindMapping:
		for _, m := range v.Members() {
			child := m.Key
			if path != "" {
				child = path + "." + m.Key
			}
			if err := searchWalk(m.Value, child, re, matches); err != nil {
				return err
			}
		}
	case value.KindSequence:
		for i, item := range v.Items() {
			child := path + "[" + strconv.Itoa(i) + "]"
			if err := searchWalk(item, child, re, matches); err != nil {
				return err
			}
		}
	case value.KindString:
		ok, err := re.MatchString(v.Str())
		if err != nil {
			return fmt.Errorf("matching %q: %w", path, err)
		}
		if ok {
			*matches = append(*matches, Match{Path: path, Text: v.Str()})
		}
	}
	return nil
}

// Numbers collects every number leaf depth-first in traversal order.
func Numbers(v value.Value) []value.Value {
	var numbers []value.Value
	collectNumbers(v, &numbers)
	return numbers
}

func collectNumbers(v value.Value, numbers *[]value.Value) {
	switch v.Kind() {
	case value.KindNumber:
		*numbers = append(*numbers, v)
	case value.KindMapping:
		for _, m := range v.Members() {
			collectNumbers(m.Value, numbers)
		}
	case value.KindSequence:
		for _, item := range v.Items() {
			collectNumbers(item, numbers)
		}
	}
}

// Stats aggregates every number leaf of v into a mapping with count, sum,
// avg, min and max members. The sum stays an integer when every collected
// number is an integer; the average always divides as floating point. With
// no number leaves it returns ErrNoNumericValues.
func Stats(v value.Value) (value.Value, error) {
	numbers := Numbers(v)
	if len(numbers) == 0 {
		return value.Value{}, ErrNoNumericValues
	}

	var sum float64
	allInt := true
	minVal := numbers[0]
	maxVal := numbers[0]

	for _, n := range numbers {
		sum += n.Float64()
		if !n.IsInt() {
			allInt = false
		}
		if n.Float64() < minVal.Float64() {
			minVal = n
		}
		if n.Float64() > maxVal.Float64() {
			maxVal = n
		}
	}

	sumVal := value.Float(sum)
	if allInt {
		sumVal = value.Int(int64(sum))
	}

	return value.Mapping(
		value.Member{Key: "count", Value: value.Int(int64(len(numbers)))},
		value.Member{Key: "sum", Value: sumVal},
		value.Member{Key: "avg", Value: value.Float(sum / float64(len(numbers)))},
		value.Member{Key: "min", Value: minVal},
		value.Member{Key: "max", Value: maxVal},
	), nil
}
