package graph

import "fmt"

// LoadSampleData populates the store with the demo dataset: two teams, four
// developers, four skills, and five defects, with skill, defect, and team
// assignments. The store should be empty; duplicate ids fail the load.
func LoadSampleData(s *Store) error {
	teams := []Team{
		{ID: "team1", Name: "Backend Team", Location: "San Francisco"},
		{ID: "team2", Name: "Frontend Team", Location: "New York"},
	}
	for _, t := range teams {
		if err := s.CreateTeam(t); err != nil {
			return fmt.Errorf("failed to create team %s: %w", t.ID, err)
		}
	}

	developers := []Developer{
		{ID: "dev1", Name: "Alice", TeamID: "team1"},
		{ID: "dev2", Name: "Bob", TeamID: "team1"},
		{ID: "dev3", Name: "Carol", TeamID: "team2"},
		{ID: "dev4", Name: "Dave", TeamID: "team2"},
	}
	for _, dev := range developers {
		if err := s.CreateDeveloper(dev); err != nil {
			return fmt.Errorf("failed to create developer %s: %w", dev.ID, err)
		}
	}

	skills := []Skill{
		{ID: "skill1", Name: "Java", Level: LevelExpert},
		{ID: "skill2", Name: "Python", Level: LevelIntermediate},
		{ID: "skill3", Name: "React", Level: LevelExpert},
		{ID: "skill4", Name: "Neo4j", Level: LevelBeginner},
	}
	for _, sk := range skills {
		if err := s.CreateSkill(sk); err != nil {
			return fmt.Errorf("failed to create skill %s: %w", sk.ID, err)
		}
	}

	defects := []Defect{
		{ID: "defect1", Title: "Login API fails", Severity: SeverityHigh, Status: StatusOpen},
		{ID: "defect2", Title: "Database connection timeout", Severity: SeverityCritical, Status: StatusOpen},
		{ID: "defect3", Title: "UI button misaligned", Severity: SeverityLow, Status: StatusClosed},
		{ID: "defect4", Title: "Performance issue in query", Severity: SeverityMedium, Status: StatusInProgress},
		{ID: "defect5", Title: "Memory leak in service", Severity: SeverityHigh, Status: StatusOpen},
	}
	for _, def := range defects {
		if err := s.CreateDefect(def); err != nil {
			return fmt.Errorf("failed to create defect %s: %w", def.ID, err)
		}
	}

	skillAssignments := [][2]string{
		{"dev1", "skill1"}, // Alice -> Java
		{"dev1", "skill2"}, // Alice -> Python
		{"dev2", "skill1"}, // Bob -> Java
		{"dev2", "skill4"}, // Bob -> Neo4j
		{"dev3", "skill3"}, // Carol -> React
		{"dev4", "skill3"}, // Dave -> React
		{"dev4", "skill2"}, // Dave -> Python
	}
	for _, a := range skillAssignments {
		if err := s.AssignSkillToDeveloper(a[0], a[1]); err != nil {
			return fmt.Errorf("failed to assign skill %s to %s: %w", a[1], a[0], err)
		}
	}

	defectAssignments := [][2]string{
		{"defect1", "dev1"}, // Alice
		{"defect2", "dev1"}, // Alice
		{"defect3", "dev3"}, // Carol
		{"defect4", "dev1"}, // Alice
		{"defect5", "dev2"}, // Bob
	}
	for _, a := range defectAssignments {
		if err := s.AssignDefectToDeveloper(a[0], a[1]); err != nil {
			return fmt.Errorf("failed to assign defect %s to %s: %w", a[0], a[1], err)
		}
	}

	teamAssignments := [][2]string{
		{"dev1", "team1"}, // Alice -> Backend Team
		{"dev2", "team1"}, // Bob -> Backend Team
		{"dev3", "team2"}, // Carol -> Frontend Team
		{"dev4", "team2"}, // Dave -> Frontend Team
	}
	for _, a := range teamAssignments {
		if err := s.AssignDeveloperToTeam(a[0], a[1]); err != nil {
			return fmt.Errorf("failed to assign developer %s to team %s: %w", a[0], a[1], err)
		}
	}

	return nil
}
