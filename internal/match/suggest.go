package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the score below which a candidate is never suggested.
const MinSimilarity = 0.5

type scored struct {
	value string
	score float64
}

// Suggest returns up to limit candidates closest to target, best first.
// Candidates scoring below MinSimilarity are dropped; ties keep candidate order.
func Suggest(target string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	ranked := make([]scored, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if c == target {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(target, c); s >= MinSimilarity {
			ranked = append(ranked, scored{value: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.value
	}

	return out
}
