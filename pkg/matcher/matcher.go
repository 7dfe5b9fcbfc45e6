// Package matcher finds known brand names inside free-text answers.
package matcher

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/fleetintake/pkg/lexicon"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the similarity a span must exceed to be accepted.
const DefaultThreshold = 80

// Matcher scores spans of an answer against a fixed brand vocabulary.
// Build it once per vocabulary; it is safe for concurrent use.
type Matcher struct {
	brands    []brand
	threshold int
}

type brand struct {
	name  string // as listed in the vocabulary
	bland string // normalized form
	size  int    // runes in bland
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the acceptance threshold in [0,100). A span is accepted
// when its similarity is strictly greater.
func WithThreshold(threshold int) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithExactMatch only accepts spans equal to a brand after normalization.
func WithExactMatch() Option {
	return WithThreshold(99)
}

// New prepares a Matcher for the known brands. When two entries normalize to
// the same form the first one wins.
func New(known []string, opts ...Option) *Matcher {
	m := &Matcher{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(m)
	}

	seen := make(map[string]bool, len(known))
	for _, name := range known {
		bland := lexicon.Normalize(name)
		if bland == "" || seen[bland] {
			continue
		}
		seen[bland] = true
		m.brands = append(m.brands, brand{name: name, bland: bland, size: utf8.RuneCountInString(bland)})
	}
	return m
}

// Brands returns the vocabulary in priority order, without duplicates.
func (m *Matcher) Brands() []string {
	out := make([]string, len(m.brands))
	for i, b := range m.brands {
		out[i] = b.name
	}
	return out
}

// Find returns the distinct brands mentioned in answer, in discovery order.
//
// Spans are tried longest first at each start position, so a two-word brand
// is not shadowed by a one-word brand inside it. An accepted span is removed
// and the search restarts on the remaining tokens.
func (m *Matcher) Find(answer string) []string {
	tokens := strings.Fields(lexicon.Normalize(answer))

	var found []string
	seen := make(map[string]bool)
	for {
		i, j, idx := m.firstSpan(tokens)
		if idx < 0 {
			break
		}
		if name := m.brands[idx].name; !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
		rest := make([]string, 0, len(tokens)-(j-i))
		rest = append(rest, tokens[:i]...)
		tokens = append(rest, tokens[j:]...)
	}
	return found
}

// firstSpan returns the first accepted span [i,j) and the index of its brand,
// or idx < 0 when no span is accepted.
func (m *Matcher) firstSpan(tokens []string) (i, j, idx int) {
	// prefix[k] is the rune length of tokens[:k] joined, plus one separator per token.
	prefix := make([]int, len(tokens)+1)
	for k, tok := range tokens {
		prefix[k+1] = prefix[k] + utf8.RuneCountInString(tok) + 1
	}

	for i = 0; i < len(tokens); i++ {
		for j = len(tokens); j > i; j-- {
			if !m.reachable(prefix[j] - prefix[i] - 1) {
				continue
			}
			if idx, score := m.best(strings.Join(tokens[i:j], " ")); idx >= 0 && score > m.threshold {
				return i, j, idx
			}
		}
	}
	return 0, 0, -1
}

// reachable reports whether a candidate of size runes could pass the
// threshold against at least one brand.
func (m *Matcher) reachable(size int) bool {
	for _, b := range m.brands {
		if m.bounded(size, b.size) {
			return true
		}
	}
	return false
}

// bounded reports whether the best possible ratio between strings of sizes
// la and lb exceeds the threshold. The ratio is at most 2*min/(la+lb).
func (m *Matcher) bounded(la, lb int) bool {
	return ratioToScore(2*float64(min(la, lb))/float64(la+lb)) > m.threshold
}

// best returns the highest scoring brand for candidate. Ties go to the
// earlier brand.
func (m *Matcher) best(candidate string) (idx, score int) {
	idx, score = -1, -1
	size := utf8.RuneCountInString(candidate)
	for k, b := range m.brands {
		if !m.bounded(size, b.size) {
			continue
		}
		if s := Similarity(candidate, b.bland); s > score {
			idx, score = k, s
		}
	}
	return idx, score
}

// FindBrands is a convenience wrapper around New(known).Find(answer).
func FindBrands(answer string, known []string) []string {
	return New(known).Find(answer)
}

// Similarity scores a against b in [0,100] as 100 times the
// difflib sequence-matcher ratio over runes.
func Similarity(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	sm := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return ratioToScore(sm.Ratio())
}

func ratioToScore(r float64) int {
	return int(math.Round(100 * r))
}
