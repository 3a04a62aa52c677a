package graph

import (
	"go.uber.org/zap"

	apperrors "github.com/tanmaypatil/graph-db/pkg/errors"
)

// RecommendDevelopersWithDetails finds developers who could help with a
// defect, based on required skill names, excluding developers already
// assigned to it. Results are ranked by number of matching skills
// descending, then current workload across all defects ascending; the sort
// is stable on full ties.
//
// The anchor defect must exist; absence is an error, unlike the listing
// queries. An empty requiredSkills list matches nothing, so the result is
// empty for any graph state.
func (r *Repository) RecommendDevelopersWithDetails(defectID string, requiredSkills []string) ([]DeveloperRecommendation, error) {
	if _, ok := r.store.Defect(defectID); !ok {
		return nil, apperrors.NewNotFound(KindDefect, defectID)
	}

	required := make(map[string]struct{}, len(requiredSkills))
	for _, name := range requiredSkills {
		required[name] = struct{}{}
	}

	recommendations := []DeveloperRecommendation{}
	for _, dev := range r.store.Developers() {
		if r.assignedTo(dev.ID, defectID) {
			continue
		}

		// count distinct skill nodes whose name is required; parallel
		// HAS_SKILL edges to the same skill count once
		matched := make(map[string]struct{})
		for _, skillID := range r.store.OutNeighbors(dev.ID, EdgeHasSkill) {
			sk, ok := r.store.Skill(skillID)
			if !ok {
				continue
			}
			if _, want := required[sk.Name]; want {
				matched[skillID] = struct{}{}
			}
		}
		if len(matched) == 0 {
			continue
		}

		// workload counts every ASSIGNED_TO edge, independent of the skill
		// match; zero is a valid value
		workload := len(r.store.OutNeighbors(dev.ID, EdgeAssignedTo))

		recommendations = append(recommendations, DeveloperRecommendation{
			Name:            dev.Name,
			MatchingSkills:  len(matched),
			CurrentWorkload: workload,
		})
	}

	rankRecommendations(recommendations)

	r.logger.Info("Found developer recommendations for defect",
		zap.Int("count", len(recommendations)),
		zap.String("defect_id", defectID),
	)
	return recommendations, nil
}

// RecommendDevelopersForDefect is the basic variant returning developer
// name to matching-skill count. The map shape carries no ordering; use
// RecommendDevelopersWithDetails when ranking order matters. Developers
// sharing a name collapse to one entry.
func (r *Repository) RecommendDevelopersForDefect(defectID string, requiredSkills []string) (map[string]int, error) {
	detailed, err := r.RecommendDevelopersWithDetails(defectID, requiredSkills)
	if err != nil {
		return nil, err
	}

	recommendations := make(map[string]int, len(detailed))
	for _, rec := range detailed {
		recommendations[rec.Name] = rec.MatchingSkills
	}
	return recommendations, nil
}

// assignedTo reports whether the developer has an ASSIGNED_TO edge to the
// given defect
func (r *Repository) assignedTo(developerID, defectID string) bool {
	for _, id := range r.store.OutNeighbors(developerID, EdgeAssignedTo) {
		if id == defectID {
			return true
		}
	}
	return false
}
