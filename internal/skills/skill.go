package skills

import "errors"

// ErrNotFound is returned when a skill ID is not present in the catalog.
var ErrNotFound = errors.New("skill not found")

// Difficulty represents the overall difficulty band of a skill.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Label returns the display label for a difficulty band.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// Skill is a named assessable competency. Skills are immutable reference
// data loaded into the catalog at startup.
type Skill struct {
	ID          string
	Name        string
	Category    string
	Description string
	Icon        string
	Difficulty  Difficulty

	// EstimatedMins is the test time limit in minutes. Always > 0.
	EstimatedMins int

	// PassThreshold is the minimum score (0-100) required to pass
	// this skill's certification test.
	PassThreshold int

	Tags []string
}

// TimeLimitSecs returns the test countdown duration in seconds.
func (s Skill) TimeLimitSecs() int {
	return s.EstimatedMins * 60
}
