package nlp

import (
	"strings"
)

const fuzzyMatchThreshold = 0.7

// MatchContact finds the best contact name for the cleaned query. Match
// priority is exact full name, then exact token, then substring token, then
// fuzzy prefix similarity of at least the threshold. Returns the index into
// names, or false when nothing reaches the bar.
func MatchContact(query string, names []string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1, false
	}

	queryTokens := strings.Fields(q)

	bestIdx := -1
	bestRank := 0
	bestScore := 0.0

	for i, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == q {
			return i, true
		}

		rank, score := scoreName(queryTokens, strings.Fields(n))
		if rank > bestRank || (rank == bestRank && score > bestScore) {
			bestIdx = i
			bestRank = rank
			bestScore = score
		}
	}

	if bestRank == 0 {
		return -1, false
	}

	return bestIdx, true
}

func scoreName(queryTokens, nameTokens []string) (int, float64) {
	rank := 0
	score := 0.0

	for _, qt := range queryTokens {
		for _, nt := range nameTokens {
			switch {
			case qt == nt:
				if rank < 3 {
					rank, score = 3, 1.0
				}
			case strings.Contains(nt, qt) || strings.Contains(qt, nt):
				if rank < 2 {
					rank, score = 2, 0.9
				}
			default:
				if s := prefixSimilarity(qt, nt); s >= fuzzyMatchThreshold {
					if rank < 1 || (rank == 1 && s > score) {
						rank, score = 1, s
					}
				}
			}
		}
	}

	return rank, score
}

func prefixSimilarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}

	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}

	return float64(common) / float64(maxLen)
}
