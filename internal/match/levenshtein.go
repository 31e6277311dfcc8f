package match

// Distance computes the Levenshtein distance between two strings, counted in runes.
// The distance is the minimum number of single-rune insertions, deletions or
// substitutions required to turn a into b.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Keep the shorter string in ra so the rows stay small.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 - distance/maxLen after normalizing both inputs.
// Identical (or both empty) inputs score 1.0.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	maxLen := max(len([]rune(na)), len([]rune(nb)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(na, nb))/float64(maxLen)
}
