package graph

import (
	"go.uber.org/zap"

	apperrors "github.com/tanmaypatil/graph-db/pkg/errors"
	"github.com/tanmaypatil/graph-db/pkg/logger"
)

// Store is an in-memory node and edge store.
//
// Each node kind has its own id space. Edges are directed, typed, and not
// deduplicated: inserting the same (type, from, to) triple twice yields two
// parallel edges, and edge counts count edges, not distinct neighbors.
//
// The store performs no internal locking. It expects a single logical
// writer; callers that share one instance across goroutines must supply
// their own mutual exclusion. Reads on a store with no concurrent writer
// may run in parallel.
type Store struct {
	logger *zap.Logger

	developers map[string]Developer
	defects    map[string]Defect
	skills     map[string]Skill
	teams      map[string]Team

	// insertion order per kind, so unsorted traversals are deterministic
	developerOrder []string
	teamOrder      []string

	out map[EdgeType]map[string][]string
	in  map[EdgeType]map[string][]string
}

// NewStore creates an empty graph store
func NewStore() *Store {
	s := &Store{logger: logger.Get()}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.developers = make(map[string]Developer)
	s.defects = make(map[string]Defect)
	s.skills = make(map[string]Skill)
	s.teams = make(map[string]Team)
	s.developerOrder = nil
	s.teamOrder = nil
	s.out = make(map[EdgeType]map[string][]string)
	s.in = make(map[EdgeType]map[string][]string)
}

// Clear removes all nodes and edges. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	s.reset()
	s.logger.Info("Graph cleared")
}

// CreateDeveloper inserts a developer node
func (s *Store) CreateDeveloper(dev Developer) error {
	if dev.ID == "" {
		return apperrors.NewInvalidArgument("developer id must not be empty")
	}
	if _, exists := s.developers[dev.ID]; exists {
		return apperrors.NewDuplicateID(KindDeveloper, dev.ID)
	}
	s.developers[dev.ID] = dev
	s.developerOrder = append(s.developerOrder, dev.ID)
	s.logger.Info("Created developer", zap.String("name", dev.Name))
	return nil
}

// CreateDefect inserts a defect node
func (s *Store) CreateDefect(def Defect) error {
	if def.ID == "" {
		return apperrors.NewInvalidArgument("defect id must not be empty")
	}
	if _, exists := s.defects[def.ID]; exists {
		return apperrors.NewDuplicateID(KindDefect, def.ID)
	}
	s.defects[def.ID] = def
	s.logger.Info("Created defect", zap.String("title", def.Title))
	return nil
}

// CreateSkill inserts a skill node
func (s *Store) CreateSkill(sk Skill) error {
	if sk.ID == "" {
		return apperrors.NewInvalidArgument("skill id must not be empty")
	}
	if _, exists := s.skills[sk.ID]; exists {
		return apperrors.NewDuplicateID(KindSkill, sk.ID)
	}
	s.skills[sk.ID] = sk
	s.logger.Info("Created skill", zap.String("name", sk.Name))
	return nil
}

// CreateTeam inserts a team node
func (s *Store) CreateTeam(t Team) error {
	if t.ID == "" {
		return apperrors.NewInvalidArgument("team id must not be empty")
	}
	if _, exists := s.teams[t.ID]; exists {
		return apperrors.NewDuplicateID(KindTeam, t.ID)
	}
	s.teams[t.ID] = t
	s.teamOrder = append(s.teamOrder, t.ID)
	s.logger.Info("Created team", zap.String("name", t.Name))
	return nil
}

// CreateEdge inserts a directed edge. Both endpoints must already exist in
// the kind-spaces the edge type dictates; a failed insert leaves the store
// unchanged.
func (s *Store) CreateEdge(edgeType EdgeType, fromID, toID string) error {
	switch edgeType {
	case EdgeHasSkill:
		if _, ok := s.developers[fromID]; !ok {
			return apperrors.NewDanglingReference(string(edgeType), fromID)
		}
		if _, ok := s.skills[toID]; !ok {
			return apperrors.NewDanglingReference(string(edgeType), toID)
		}
	case EdgeAssignedTo:
		if _, ok := s.developers[fromID]; !ok {
			return apperrors.NewDanglingReference(string(edgeType), fromID)
		}
		if _, ok := s.defects[toID]; !ok {
			return apperrors.NewDanglingReference(string(edgeType), toID)
		}
	case EdgeMemberOf:
		if _, ok := s.developers[fromID]; !ok {
			return apperrors.NewDanglingReference(string(edgeType), fromID)
		}
		if _, ok := s.teams[toID]; !ok {
			return apperrors.NewDanglingReference(string(edgeType), toID)
		}
	default:
		return apperrors.NewInvalidArgument("unknown edge type: " + string(edgeType))
	}

	if s.out[edgeType] == nil {
		s.out[edgeType] = make(map[string][]string)
	}
	if s.in[edgeType] == nil {
		s.in[edgeType] = make(map[string][]string)
	}
	s.out[edgeType][fromID] = append(s.out[edgeType][fromID], toID)
	s.in[edgeType][toID] = append(s.in[edgeType][toID], fromID)
	return nil
}

// AssignSkillToDeveloper creates a HAS_SKILL edge
func (s *Store) AssignSkillToDeveloper(developerID, skillID string) error {
	if err := s.CreateEdge(EdgeHasSkill, developerID, skillID); err != nil {
		return err
	}
	s.logger.Info("Assigned skill to developer",
		zap.String("skill_id", skillID),
		zap.String("developer_id", developerID),
	)
	return nil
}

// AssignDefectToDeveloper creates an ASSIGNED_TO edge
func (s *Store) AssignDefectToDeveloper(defectID, developerID string) error {
	if err := s.CreateEdge(EdgeAssignedTo, developerID, defectID); err != nil {
		return err
	}
	s.logger.Info("Assigned defect to developer",
		zap.String("defect_id", defectID),
		zap.String("developer_id", developerID),
	)
	return nil
}

// AssignDeveloperToTeam creates a MEMBER_OF edge
func (s *Store) AssignDeveloperToTeam(developerID, teamID string) error {
	if err := s.CreateEdge(EdgeMemberOf, developerID, teamID); err != nil {
		return err
	}
	s.logger.Info("Assigned developer to team",
		zap.String("developer_id", developerID),
		zap.String("team_id", teamID),
	)
	return nil
}

// OutNeighbors returns the ids reachable from nodeID over edges of the
// given type, in edge insertion order. The slice is a copy; repeated calls
// on an unmodified store return the same sequence.
func (s *Store) OutNeighbors(nodeID string, edgeType EdgeType) []string {
	return append([]string(nil), s.out[edgeType][nodeID]...)
}

// InNeighbors returns the ids with an edge of the given type pointing at
// nodeID, in edge insertion order. The slice is a copy.
func (s *Store) InNeighbors(nodeID string, edgeType EdgeType) []string {
	return append([]string(nil), s.in[edgeType][nodeID]...)
}

// Developer returns the developer with the given id
func (s *Store) Developer(id string) (Developer, bool) {
	dev, ok := s.developers[id]
	return dev, ok
}

// Defect returns the defect with the given id
func (s *Store) Defect(id string) (Defect, bool) {
	def, ok := s.defects[id]
	return def, ok
}

// Skill returns the skill with the given id
func (s *Store) Skill(id string) (Skill, bool) {
	sk, ok := s.skills[id]
	return sk, ok
}

// Team returns the team with the given id
func (s *Store) Team(id string) (Team, bool) {
	t, ok := s.teams[id]
	return t, ok
}

// Developers returns all developers in insertion order
func (s *Store) Developers() []Developer {
	devs := make([]Developer, 0, len(s.developerOrder))
	for _, id := range s.developerOrder {
		devs = append(devs, s.developers[id])
	}
	return devs
}

// Teams returns all teams in insertion order
func (s *Store) Teams() []Team {
	teams := make([]Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		teams = append(teams, s.teams[id])
	}
	return teams
}

// DevelopersByName returns the ids of every developer with the given name,
// in insertion order. Names are not unique; callers needing strict identity
// should key by id.
func (s *Store) DevelopersByName(name string) []string {
	var ids []string
	for _, id := range s.developerOrder {
		if s.developers[id].Name == name {
			ids = append(ids, id)
		}
	}
	return ids
}

// TeamsByName returns the ids of every team with the given name, in
// insertion order
func (s *Store) TeamsByName(name string) []string {
	var ids []string
	for _, id := range s.teamOrder {
		if s.teams[id].Name == name {
			ids = append(ids, id)
		}
	}
	return ids
}
