package domain

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Relevance tiers, highest first. Substring matches score by position below
// tierBoundary; the floor keeps them above the fuzzy band [0, 100].
const (
	tierExact         = 1000
	tierPrefix        = 900
	tierFirstWord     = 850
	tierFirstPrefix   = 800
	tierWordMatch     = 700
	tierBoundary      = 600
	tierSubstringBase = 500
	tierSubstringMin  = 401
)

// ScoredEntry pairs a command with its relevance tier and tiebreak while
// ranking. Higher tier wins; within a tier, lower tiebreak wins.
type ScoredEntry struct {
	Entry    string
	Tier     int
	Tiebreak int
}

// Rank orders items by descending relevance to query. An empty query returns
// items unchanged. The result is always a permutation of items: entries with
// no structural match sink to the bottom on a fuzzy similarity score, they
// are never dropped. Matching is case-insensitive; ties within a tier prefer
// shorter entries, then the original order.
func Rank(query string, items []string) []string {
	if query == "" || len(items) == 0 {
		return items
	}

	scored := make([]ScoredEntry, len(items))
	for i, item := range items {
		scored[i] = Score(query, item)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Tier != scored[j].Tier {
			return scored[i].Tier > scored[j].Tier
		}
		return scored[i].Tiebreak < scored[j].Tiebreak
	})

	ranked := make([]string, len(scored))
	for i, s := range scored {
		ranked[i] = s.Entry
	}
	return ranked
}

// Score computes the relevance of one entry against a non-empty query by
// applying the first matching rule below.
func Score(query, entry string) ScoredEntry {
	q := strings.ToLower(query)
	e := strings.ToLower(entry)
	s := ScoredEntry{Entry: entry, Tiebreak: len(entry)}

	// Exact match beats everything.
	if e == q {
		s.Tier = tierExact
		s.Tiebreak = 0
		return s
	}

	// Entry starts with the query as a complete leading token sequence.
	if strings.HasPrefix(e, q+" ") || strings.HasPrefix(e, q+"\t") {
		s.Tier = tierPrefix
		return s
	}

	words := strings.Fields(e)
	firstWord := ""
	if len(words) > 0 {
		firstWord = words[0]
	}
	if firstWord == q {
		s.Tier = tierFirstWord
		return s
	}
	if strings.HasPrefix(firstWord, q) {
		s.Tier = tierFirstPrefix
		return s
	}

	// Query is a whole word somewhere in the entry.
	for _, w := range words {
		if w == q {
			s.Tier = tierWordMatch
			return s
		}
	}

	// Word or path boundary.
	if strings.Contains(e, " "+q) || strings.Contains(e, "/"+q) {
		s.Tier = tierBoundary
		return s
	}

	// Substring anywhere: earlier occurrences rank higher, floored so the
	// tier never reaches the fuzzy band.
	if idx := strings.Index(e, q); idx != -1 {
		tier := tierSubstringBase - idx
		if tier < tierSubstringMin {
			tier = tierSubstringMin
		}
		s.Tier = tier
		return s
	}

	if matches := fuzzy.Find(q, []string{e}); len(matches) > 0 {
		s.Tier = clampFuzzy(matches[0].Score)
	}
	return s
}

func clampFuzzy(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
