package logic

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"llmsbrowse/internal/domain"
)

// MatchMode selects how a query is matched against item fields
type MatchMode int

const (
	// MatchSubstring is case-insensitive containment in any search field
	MatchSubstring MatchMode = iota
	// MatchFuzzy accepts in-order subsequences of the joined search fields
	MatchFuzzy
)

// ParseMatchMode maps a config value onto a MatchMode
func ParseMatchMode(s string) MatchMode {
	if strings.EqualFold(s, "fuzzy") {
		return MatchFuzzy
	}
	return MatchSubstring
}

func (m MatchMode) String() string {
	if m == MatchFuzzy {
		return "fuzzy"
	}
	return "substring"
}

// Filter returns the items matching query, in collection order.
// A blank query returns a copy of the whole collection.
func Filter[T domain.Item](items []T, query string, mode MatchMode) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	if mode == MatchFuzzy {
		return fuzzyFilter(items, q)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether a lowercased query is contained in any search field
func Matches(item domain.Item, lowerQuery string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}

// itemSource adapts a collection for fuzzy.FindFrom
type itemSource[T domain.Item] []T

func (s itemSource[T]) String(i int) string {
	return strings.ToLower(strings.Join(s[i].SearchFields(), " "))
}

func (s itemSource[T]) Len() int { return len(s) }

// fuzzyFilter keeps collection order; scores only decide membership
func fuzzyFilter[T domain.Item](items []T, lowerQuery string) []T {
	matches := fuzzy.FindFrom(lowerQuery, itemSource[T](items))

	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	sort.Ints(idx)

	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}
