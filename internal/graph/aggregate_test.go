package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountGroupBy_ZeroCountsAreAbsent(t *testing.T) {
	counts := countGroupBy([]string{"Alice", "Bob", "Alice", "Alice"})
	assert.Equal(t, map[string]int{"Alice": 3, "Bob": 1}, counts)

	_, present := counts["Dave"]
	assert.False(t, present)
}

func TestDistinctOrdered_PreservesFirstSeenOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"Python", "Java", "React"},
		distinctOrdered([]string{"Python", "Java", "Python", "React", "Java"}),
	)
	assert.Empty(t, distinctOrdered(nil))
}

func TestRankRecommendations_TwoKeyOrdering(t *testing.T) {
	recs := []DeveloperRecommendation{
		{Name: "Bob", MatchingSkills: 1, CurrentWorkload: 1},
		{Name: "Dave", MatchingSkills: 1, CurrentWorkload: 0},
		{Name: "Erin", MatchingSkills: 2, CurrentWorkload: 5},
	}
	rankRecommendations(recs)

	assert.Equal(t, "Erin", recs[0].Name)
	assert.Equal(t, "Dave", recs[1].Name)
	assert.Equal(t, "Bob", recs[2].Name)
}

func TestRankRecommendations_StableOnFullTies(t *testing.T) {
	recs := []DeveloperRecommendation{
		{Name: "First", MatchingSkills: 1, CurrentWorkload: 2},
		{Name: "Second", MatchingSkills: 1, CurrentWorkload: 2},
	}
	rankRecommendations(recs)

	assert.Equal(t, "First", recs[0].Name)
	assert.Equal(t, "Second", recs[1].Name)
}
