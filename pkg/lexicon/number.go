package lexicon

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// numberWords maps the spelled-out numbers we understand to their values.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20,
}

// ParseInt interprets s as an integer, given in digits or as a number word.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if n, ok := numberWords[Normalize(s)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrNotANumber, s)
}

// ParseFloat interprets s as a finite decimal number, given in digits or as a number word.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: %q", domain.ErrNotANumber, s)
		}
		return x, nil
	}
	if n, ok := numberWords[Normalize(s)]; ok {
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrNotANumber, s)
}

// ParseNonEmpty trims s and rejects blank answers.
func ParseNonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.ErrEmptyInput
	}
	return s, nil
}

// Unit describes the optional unit suffix of a quantity.
type Unit struct {
	// Aliases are the tokens of the default unit; values are kept as given.
	Aliases []string
	// Alternate are the tokens of a second unit, converted by Factor.
	Alternate []string
	Factor    float64

	pattern *regexp.Regexp
}

// NewUnit compiles the suffix pattern for a unit.
func NewUnit(aliases, alternate []string, factor float64) Unit {
	tokens := append(append([]string(nil), aliases...), alternate...)
	// Longest first so "tons" is not read as "t" followed by garbage.
	sort.SliceStable(tokens, func(i, j int) bool { return len(tokens[i]) > len(tokens[j]) })
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return Unit{
		Aliases:   aliases,
		Alternate: alternate,
		Factor:    factor,
		pattern:   regexp.MustCompile(`(?i)^(.*?)(` + strings.Join(quoted, "|") + `)?\s*$`),
	}
}

var (
	// EngineVolume accepts litres, or cubic centimetres converted to litres.
	EngineVolume = NewUnit([]string{"l", "litre", "litres", "liter", "liters"}, []string{"cc", "cm³", "ccm"}, 0.001)
	// Tons accepts an optional ton suffix.
	Tons = NewUnit([]string{"t", "ton", "tons", "tonnes"}, nil, 1)
)

// ParseQuantity parses a number with an optional trailing unit token.
func ParseQuantity(s string, unit Unit) (float64, error) {
	if unit.pattern == nil {
		unit = NewUnit(unit.Aliases, unit.Alternate, unit.Factor)
	}
	m := unit.pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrNotANumber, s)
	}

	x, err := ParseFloat(m[1])
	if err != nil {
		// "eight" ends in "t"; retry without treating the tail as a unit.
		if whole, wholeErr := ParseFloat(s); wholeErr == nil {
			return whole, nil
		}
		return 0, err
	}

	for _, alt := range unit.Alternate {
		if strings.EqualFold(m[2], alt) {
			return x * unit.Factor, nil
		}
	}
	return x, nil
}
