package graph

import (
	"sort"

	"go.uber.org/zap"

	"github.com/tanmaypatil/graph-db/pkg/logger"
)

// Repository answers the fixed repertoire of queries over a Store. It holds
// no state of its own; all results are copies and never alias store
// internals.
type Repository struct {
	store  *Store
	logger *zap.Logger
}

// NewRepository creates a repository over the given store
func NewRepository(store *Store) *Repository {
	return &Repository{
		store:  store,
		logger: logger.Get(),
	}
}

// Store returns the underlying graph store
func (r *Repository) Store() *Store {
	return r.store
}

// FindDevelopersByTeam returns all developers that are members of a team
// with the given name. Traversal: (Developer)-[:MEMBER_OF]->(Team {name}).
// An unknown team name yields an empty result, not an error. Team names are
// not unique; all matching teams contribute.
func (r *Repository) FindDevelopersByTeam(teamName string) []Developer {
	rows := r.store.Match(Pattern{
		Anchors: r.store.TeamsByName(teamName),
		Hops:    []Hop{{Type: EdgeMemberOf, Dir: In}},
	})

	developers := make([]Developer, 0, len(rows))
	for _, id := range column(rows, 1) {
		if dev, ok := r.store.Developer(id); ok {
			developers = append(developers, dev)
		}
	}

	r.logger.Info("Found developers in team",
		zap.Int("count", len(developers)),
		zap.String("team", teamName),
	)
	return developers
}

// FindDefectsAssignedToDeveloper returns all defects assigned to a
// developer with the given name. Traversal:
// (Developer {name})-[:ASSIGNED_TO]->(Defect).
func (r *Repository) FindDefectsAssignedToDeveloper(developerName string) []Defect {
	rows := r.store.Match(Pattern{
		Anchors: r.store.DevelopersByName(developerName),
		Hops:    []Hop{{Type: EdgeAssignedTo, Dir: Out}},
	})

	defects := make([]Defect, 0, len(rows))
	for _, id := range column(rows, 1) {
		if def, ok := r.store.Defect(id); ok {
			defects = append(defects, def)
		}
	}

	r.logger.Info("Found defects for developer",
		zap.Int("count", len(defects)),
		zap.String("developer", developerName),
	)
	return defects
}

// FindDevelopersWithMostDefects counts ASSIGNED_TO edges per developer
// name. Developers with no assigned defect are absent, not zero. The map
// shape carries no ordering; callers that need the ranking should sort the
// counts themselves or use the detailed recommendation variant.
func (r *Repository) FindDevelopersWithMostDefects() map[string]int {
	developers := r.store.Developers()
	anchors := make([]string, 0, len(developers))
	for _, dev := range developers {
		anchors = append(anchors, dev.ID)
	}
	rows := r.store.Match(Pattern{
		Anchors: anchors,
		Hops:    []Hop{{Type: EdgeAssignedTo, Dir: Out}},
	})

	names := make([]string, 0, len(rows))
	for _, id := range column(rows, 0) {
		if dev, ok := r.store.Developer(id); ok {
			names = append(names, dev.Name)
		}
	}

	counts := countGroupBy(names)
	r.logger.Info("Ranked developers by defect count", zap.Int("count", len(counts)))
	return counts
}

// FindSkillsOfDevelopersWorkingOnDefect returns the distinct skill names of
// every developer assigned to the defect, sorted ascending. Traversal:
// (Developer)-[:ASSIGNED_TO]->(Defect {id}), (Developer)-[:HAS_SKILL]->(Skill).
// An unknown or unassigned defect yields an empty result.
func (r *Repository) FindSkillsOfDevelopersWorkingOnDefect(defectID string) []string {
	var anchors []string
	if _, ok := r.store.Defect(defectID); ok {
		anchors = []string{defectID}
	}
	rows := r.store.Match(Pattern{
		Anchors: anchors,
		Hops: []Hop{
			{Type: EdgeAssignedTo, Dir: In},
			{Type: EdgeHasSkill, Dir: Out},
		},
	})

	skills := r.skillNames(column(rows, 2))
	r.logger.Info("Found skills for defect",
		zap.Int("count", len(skills)),
		zap.String("defect_id", defectID),
	)
	return skills
}

// FindAllSkillsInTeam returns the distinct skill names present in a team,
// sorted ascending. Traversal:
// (Developer)-[:MEMBER_OF]->(Team {name}), (Developer)-[:HAS_SKILL]->(Skill).
func (r *Repository) FindAllSkillsInTeam(teamName string) []string {
	rows := r.store.Match(Pattern{
		Anchors: r.store.TeamsByName(teamName),
		Hops: []Hop{
			{Type: EdgeMemberOf, Dir: In},
			{Type: EdgeHasSkill, Dir: Out},
		},
	})

	skills := r.skillNames(column(rows, 2))
	r.logger.Info("Found skills in team",
		zap.Int("count", len(skills)),
		zap.String("team", teamName),
	)
	return skills
}

// skillNames resolves skill ids to names, deduplicates, and sorts ascending
func (r *Repository) skillNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if sk, ok := r.store.Skill(id); ok {
			names = append(names, sk.Name)
		}
	}
	names = distinctOrdered(names)
	sort.Strings(names)
	return names
}
