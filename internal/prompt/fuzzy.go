package prompt

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ppiankov/dcntforecast/internal/cache"
)

// Matcher ranks labels against a fuzzy query
type Matcher struct {
	cache cache.Cache
}

// NewMatcher creates a matcher. A nil cache disables memoization.
func NewMatcher(c cache.Cache) *Matcher {
	return &Matcher{cache: c}
}

// Rank returns the indexes of items matching query, best first.
// An empty query keeps every item in catalog order.
func (m *Matcher) Rank(items []string, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(items))
		for i := range items {
			all[i] = i
		}
		return all
	}

	var key string
	if m != nil && m.cache != nil {
		key = cache.Key(strings.Join(items, "\x1f"), query)
		if ranks, ok := m.cache.Get(key); ok {
			return ranks
		}
	}

	matches := fuzzy.Find(query, items)
	ranks := make([]int, len(matches))
	for i, match := range matches {
		ranks[i] = match.Index
	}

	if key != "" {
		m.cache.Set(key, ranks)
	}
	return ranks
}

// Pick resolves a typed answer to one item: exact label, then label
// prefix, then the best fuzzy match
func (m *Matcher) Pick(items []string, answer string) (int, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, false
	}
	for i, item := range items {
		if item == answer {
			return i, true
		}
	}
	for i, item := range items {
		if strings.HasPrefix(item, answer) {
			return i, true
		}
	}
	if ranks := m.Rank(items, answer); len(ranks) > 0 {
		return ranks[0], true
	}
	return 0, false
}
