package align

// TokenRatio scores the similarity of two token sequences as
// 2*LCS / (len(a)+len(b)), a 0..1 ratio where identical sequences score 1.
// This is the sequence-matcher ratio applied at word granularity, which is
// robust against the transcription service splitting or respelling
// individual words.
func TokenRatio(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	lcs := lcsLength(a, b)
	return 2.0 * float64(lcs) / float64(len(a)+len(b))
}

// lcsLength computes the longest-common-subsequence length with a rolling
// single-row table.
func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// overlapBound is a cheap upper bound on TokenRatio based on token multiset
// overlap, used to prune sliding-window candidates before the full LCS.
func overlapBound(counts map[string]int, aLen int, b []string) float64 {
	remaining := make(map[string]int, len(counts))
	for k, v := range counts {
		remaining[k] = v
	}
	overlap := 0
	for _, tok := range b {
		if remaining[tok] > 0 {
			remaining[tok]--
			overlap++
		}
	}
	return 2.0 * float64(overlap) / float64(aLen+len(b))
}

// tokenCounts builds the multiset used by overlapBound.
func tokenCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
