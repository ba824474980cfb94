package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// MinSuggestionScore is the lowest similarity reported as a suggestion.
const MinSuggestionScore = 0.6

// Suggestion is a known name ranked against an unresolved one.
type Suggestion struct {
	Name string
	// Score is in [0, 1]; higher is closer.
	Score float64
}

// ScoreTypeNames scores the similarity of two qualified type names. The
// simple names decide unless the full names agree more closely.
func ScoreTypeNames(a, b string) float64 {
	simple := LevenshteinNormalized(NormalizeTypeName(a), NormalizeTypeName(b))
	full := LevenshteinNormalized(strings.ToLower(a), strings.ToLower(b))

	return max(simple, full)
}

// Rank scores every candidate against name and returns those at or above
// MinSuggestionScore, best first. Ties keep lexical order.
func Rank(name string, candidates []string) []Suggestion {
	out := lo.FilterMap(lo.Uniq(candidates), func(c string, _ int) (Suggestion, bool) {
		if c == name {
			return Suggestion{}, false
		}

		s := ScoreTypeNames(name, c)

		return Suggestion{Name: c, Score: s}, s >= MinSuggestionScore
	})

	slices.SortFunc(out, func(x, y Suggestion) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}

		return cmp.Compare(x.Name, y.Name)
	})

	return out
}

// Closest returns at most limit candidate names closest to name.
func Closest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return lo.Map(ranked, func(s Suggestion, _ int) string { return s.Name })
}
