package graph

// Severity classifies how serious a defect is
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Status tracks the lifecycle state of a defect
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusClosed     Status = "CLOSED"
)

// Level grades how proficient a developer is with a skill
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelExpert       Level = "EXPERT"
)

// Developer represents a developer node.
// Name is not guaranteed unique; name-keyed queries match every developer
// carrying the name.
type Developer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

// Defect represents a defect node
type Defect struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	Status   Status   `json:"status"`
}

// Skill represents a skill node
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level Level  `json:"level"`
}

// Team represents a team node
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// EdgeType identifies a directed relationship between two nodes
type EdgeType string

const (
	// EdgeHasSkill connects a Developer to a Skill
	EdgeHasSkill EdgeType = "HAS_SKILL"
	// EdgeAssignedTo connects a Developer to a Defect
	EdgeAssignedTo EdgeType = "ASSIGNED_TO"
	// EdgeMemberOf connects a Developer to a Team
	EdgeMemberOf EdgeType = "MEMBER_OF"
)

// Kind names for error reporting
const (
	KindDeveloper = "developer"
	KindDefect    = "defect"
	KindSkill     = "skill"
	KindTeam      = "team"
)

// DeveloperRecommendation is one ranked entry of the detailed
// recommendation query
type DeveloperRecommendation struct {
	Name            string `json:"name"`
	MatchingSkills  int    `json:"matching_skills"`
	CurrentWorkload int    `json:"current_workload"`
}
