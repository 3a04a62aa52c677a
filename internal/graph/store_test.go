package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tanmaypatil/graph-db/pkg/errors"
)

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore()
	require.NoError(t, LoadSampleData(store))

	store.Clear()
	assert.Empty(t, store.Developers())
	assert.Empty(t, store.Teams())
	assert.Empty(t, store.OutNeighbors("dev1", EdgeAssignedTo))

	store.Clear()
	assert.Empty(t, store.Developers())
}

func TestStore_DuplicateIDFailsPerKindSpace(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.CreateDeveloper(Developer{ID: "x1", Name: "Alice"}))

	err := store.CreateDeveloper(Developer{ID: "x1", Name: "Someone Else"})
	var dup *apperrors.DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, KindDeveloper, dup.Kind)
	assert.Equal(t, "x1", dup.ID)

	// same id in a different kind-space is fine
	assert.NoError(t, store.CreateTeam(Team{ID: "x1", Name: "Team X"}))
}

func TestStore_EmptyIDIsInvalid(t *testing.T) {
	store := NewStore()
	var invalid *apperrors.InvalidArgumentError
	assert.True(t, errors.As(store.CreateDeveloper(Developer{Name: "NoID"}), &invalid))
	assert.True(t, errors.As(store.CreateDefect(Defect{Title: "NoID"}), &invalid))
	assert.True(t, errors.As(store.CreateSkill(Skill{Name: "NoID"}), &invalid))
	assert.True(t, errors.As(store.CreateTeam(Team{Name: "NoID"}), &invalid))
}

func TestStore_DanglingEdgeLeavesStoreUnchanged(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.CreateDeveloper(Developer{ID: "dev1", Name: "Alice"}))

	err := store.AssignSkillToDeveloper("dev1", "missing-skill")
	var dangling *apperrors.DanglingReferenceError
	require.True(t, errors.As(err, &dangling))
	assert.Equal(t, "missing-skill", dangling.NodeID)
	assert.Empty(t, store.OutNeighbors("dev1", EdgeHasSkill))

	err = store.AssignDefectToDeveloper("defect1", "missing-dev")
	require.True(t, errors.As(err, &dangling))
	assert.Empty(t, store.InNeighbors("defect1", EdgeAssignedTo))
}

func TestStore_EdgeEndpointKindsAreEnforced(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.CreateDeveloper(Developer{ID: "dev1", Name: "Alice"}))
	require.NoError(t, store.CreateTeam(Team{ID: "team1", Name: "Backend Team"}))

	// a team id is not a valid HAS_SKILL target even though the node exists
	var dangling *apperrors.DanglingReferenceError
	assert.True(t, errors.As(store.CreateEdge(EdgeHasSkill, "dev1", "team1"), &dangling))
}

func TestStore_UnknownEdgeTypeIsInvalid(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.CreateDeveloper(Developer{ID: "dev1", Name: "Alice"}))

	var invalid *apperrors.InvalidArgumentError
	assert.True(t, errors.As(store.CreateEdge(EdgeType("KNOWS"), "dev1", "dev1"), &invalid))
}

func TestStore_ParallelEdgesAreKept(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.CreateDeveloper(Developer{ID: "dev1", Name: "Alice"}))
	require.NoError(t, store.CreateDefect(Defect{ID: "defect1", Title: "Crash", Severity: SeverityHigh, Status: StatusOpen}))

	require.NoError(t, store.AssignDefectToDeveloper("defect1", "dev1"))
	require.NoError(t, store.AssignDefectToDeveloper("defect1", "dev1"))

	assert.Equal(t, []string{"defect1", "defect1"}, store.OutNeighbors("dev1", EdgeAssignedTo))
	assert.Equal(t, []string{"dev1", "dev1"}, store.InNeighbors("defect1", EdgeAssignedTo))
}

func TestStore_NeighborsAreCopies(t *testing.T) {
	store := NewStore()
	require.NoError(t, LoadSampleData(store))

	got := store.OutNeighbors("dev1", EdgeHasSkill)
	require.Equal(t, []string{"skill1", "skill2"}, got)

	got[0] = "tampered"
	assert.Equal(t, []string{"skill1", "skill2"}, store.OutNeighbors("dev1", EdgeHasSkill))
}

func TestStore_AdjacencyIsRestartable(t *testing.T) {
	store := NewStore()
	require.NoError(t, LoadSampleData(store))

	first := store.InNeighbors("team1", EdgeMemberOf)
	second := store.InNeighbors("team1", EdgeMemberOf)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"dev1", "dev2"}, first)
}
