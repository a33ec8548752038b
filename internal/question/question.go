package question

// Type describes how a question is asked and answered.
type Type string

const (
	// TypeMultipleChoice questions carry 4 options and a correct index.
	TypeMultipleChoice Type = "mcq"

	// TypeShortText questions take a free-text written answer.
	TypeShortText Type = "short_text"

	// TypeScenario questions describe a situation and ask for an approach.
	TypeScenario Type = "scenario"

	// TypeCode questions ask for a code sample.
	TypeCode Type = "code"

	// TypeFileUpload questions take a reference to an uploaded artifact.
	TypeFileUpload Type = "file_upload"
)

// Difficulty is the per-question difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// PointsFor returns the standard point value for a difficulty tier.
// Pool questions may carry higher bonus values for advanced types.
func PointsFor(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 20
	default:
		return 10
	}
}

// Question is a single test question. Immutable once generated.
type Question struct {
	// ID is unique per test instance. Two tests built from the same pool
	// entry get different IDs; answers match questions by ID within one
	// attempt only.
	ID string

	Type   Type
	Prompt string

	// Options is populated only for TypeMultipleChoice. Non-empty,
	// index-addressable.
	Options []string

	// CorrectOption is the index into Options of the right answer.
	// Meaningful only for TypeMultipleChoice; -1 otherwise.
	CorrectOption int

	// Points is a positive integer matching the assigned difficulty.
	Points int

	Difficulty Difficulty

	// SkillID is the skill this question was generated for.
	SkillID string
}

// TotalPoints sums the point values of a question set.
func TotalPoints(qs []Question) int {
	total := 0
	for _, q := range qs {
		total += q.Points
	}
	return total
}
