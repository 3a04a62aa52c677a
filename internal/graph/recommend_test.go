package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tanmaypatil/graph-db/pkg/errors"
)

func TestRecommend_ExclusionAndRanking(t *testing.T) {
	repo := newSampleRepository(t)

	// defect1 is assigned to Alice, so she is excluded even though she
	// matches both required skills. Bob matches Java (workload 1), Dave
	// matches Python (workload 0); lower workload ranks first on the tie.
	recs, err := repo.RecommendDevelopersWithDetails("defect1", []string{"Java", "Python"})
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, DeveloperRecommendation{Name: "Dave", MatchingSkills: 1, CurrentWorkload: 0}, recs[0])
	assert.Equal(t, DeveloperRecommendation{Name: "Bob", MatchingSkills: 1, CurrentWorkload: 1}, recs[1])
}

func TestRecommend_BasicVariant(t *testing.T) {
	repo := newSampleRepository(t)

	recs, err := repo.RecommendDevelopersForDefect("defect1", []string{"Java", "Python"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Bob": 1, "Dave": 1}, recs)

	_, present := recs["Alice"]
	assert.False(t, present)
}

func TestRecommend_MoreMatchesRankFirst(t *testing.T) {
	repo := newSampleRepository(t)

	// defect5 is assigned to Bob. Alice matches Java and Python (2
	// skills, workload 3), Dave matches Python (1 skill, workload 0); the
	// skill count outranks the workload.
	recs, err := repo.RecommendDevelopersWithDetails("defect5", []string{"Java", "Python"})
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, DeveloperRecommendation{Name: "Alice", MatchingSkills: 2, CurrentWorkload: 3}, recs[0])
	assert.Equal(t, DeveloperRecommendation{Name: "Dave", MatchingSkills: 1, CurrentWorkload: 0}, recs[1])
}

func TestRecommend_ZeroWorkloadIsPresent(t *testing.T) {
	repo := newSampleRepository(t)

	// Dave has no assigned defects; his workload is reported as 0, not
	// omitted as in the defect-count ranking
	recs, err := repo.RecommendDevelopersWithDetails("defect1", []string{"Python"})
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, "Dave", recs[0].Name)
	assert.Equal(t, 0, recs[0].CurrentWorkload)
}

func TestRecommend_EmptyRequiredSkills(t *testing.T) {
	repo := newSampleRepository(t)

	recs, err := repo.RecommendDevelopersWithDetails("defect1", nil)
	require.NoError(t, err)
	assert.Empty(t, recs)

	basic, err := repo.RecommendDevelopersForDefect("defect1", []string{})
	require.NoError(t, err)
	assert.Empty(t, basic)
}

func TestRecommend_UnknownDefect(t *testing.T) {
	repo := newSampleRepository(t)

	_, err := repo.RecommendDevelopersWithDetails("no-such-defect", []string{"Java"})
	var notFound *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, KindDefect, notFound.Kind)
	assert.Equal(t, "no-such-defect", notFound.Key)
}

func TestRecommend_ParallelSkillEdgesCountOnce(t *testing.T) {
	repo := newSampleRepository(t)

	// a duplicate HAS_SKILL edge must not inflate the distinct skill count
	require.NoError(t, repo.Store().AssignSkillToDeveloper("dev2", "skill1"))

	recs, err := repo.RecommendDevelopersWithDetails("defect1", []string{"Java"})
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, DeveloperRecommendation{Name: "Bob", MatchingSkills: 1, CurrentWorkload: 1}, recs[0])
}

func TestRecommend_WorkloadCountsEdgesNotDistinctDefects(t *testing.T) {
	repo := newSampleRepository(t)

	// a second ASSIGNED_TO edge to the same defect counts twice, matching
	// the row-count semantics of the workload aggregate
	require.NoError(t, repo.Store().AssignDefectToDeveloper("defect5", "dev2"))

	recs, err := repo.RecommendDevelopersWithDetails("defect1", []string{"Java"})
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].CurrentWorkload)
}
