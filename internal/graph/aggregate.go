package graph

import "sort"

// countGroupBy counts occurrences of each distinct value. Values that never
// occur have no entry, so a zero count is absent rather than present as 0.
func countGroupBy(values []string) map[string]int {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// distinctOrdered deduplicates values while preserving first-seen order
func distinctOrdered(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// rankRecommendations sorts in place by matching skills descending, then
// current workload ascending. The sort is stable so full ties keep
// traversal order.
func rankRecommendations(recs []DeveloperRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchingSkills != recs[j].MatchingSkills {
			return recs[i].MatchingSkills > recs[j].MatchingSkills
		}
		return recs[i].CurrentWorkload < recs[j].CurrentWorkload
	})
}
