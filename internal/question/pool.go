package question

// poolEntry is a curated question template. Entries have no ID; a fresh
// one is assigned each time the entry is emitted into a test.
type poolEntry struct {
	Type          Type
	Prompt        string
	Options       []string
	CorrectOption int
	Points        int
	Difficulty    Difficulty
}

// pools holds the curated question banks by skill ID. Skills without a
// bank get fully synthesized test sets.
var pools = map[string][]poolEntry{
	"react-dev": {
		{
			Type:   TypeMultipleChoice,
			Prompt: "What is the correct way to update state in a React functional component?",
			Options: []string{
				"setState(newValue)",
				"useState(newValue)",
				"setStateValue(newValue)",
				"updateState(newValue)",
			},
			CorrectOption: 2,
			Points:        10,
			Difficulty:    DifficultyEasy,
		},
		{
			Type:          TypeMultipleChoice,
			Prompt:        "Which hook is used for side effects in React?",
			Options:       []string{"useState", "useEffect", "useContext", "useReducer"},
			CorrectOption: 1,
			Points:        10,
			Difficulty:    DifficultyEasy,
		},
		{
			Type:          TypeShortText,
			Prompt:        "Explain the difference between controlled and uncontrolled components in React.",
			CorrectOption: -1,
			Points:        15,
			Difficulty:    DifficultyMedium,
		},
		{
			Type:          TypeCode,
			Prompt:        "Write a React component that displays a counter with increment and decrement buttons.",
			CorrectOption: -1,
			Points:        20,
			Difficulty:    DifficultyMedium,
		},
		{
			Type:          TypeScenario,
			Prompt:        "You have a React app that is rendering slowly. What are three optimization techniques you would use?",
			CorrectOption: -1,
			Points:        15,
			Difficulty:    DifficultyHard,
		},
	},
	"solidity-dev": {
		{
			Type:          TypeMultipleChoice,
			Prompt:        "What is the correct visibility modifier for a function that should only be called from within the contract?",
			Options:       []string{"public", "external", "internal", "private"},
			CorrectOption: 3,
			Points:        10,
			Difficulty:    DifficultyEasy,
		},
		{
			Type:          TypeMultipleChoice,
			Prompt:        "Which keyword is used to prevent reentrancy attacks?",
			Options:       []string{"modifier", "require", "assert", "nonReentrant"},
			CorrectOption: 3,
			Points:        15,
			Difficulty:    DifficultyMedium,
		},
		{
			Type:          TypeCode,
			Prompt:        "Write a simple ERC-20 token contract with mint and burn functions.",
			CorrectOption: -1,
			Points:        25,
			Difficulty:    DifficultyHard,
		},
	},
	"ui-ux-design": {
		{
			Type:          TypeMultipleChoice,
			Prompt:        "What is the recommended minimum contrast ratio for normal text according to WCAG guidelines?",
			Options:       []string{"3:1", "4.5:1", "7:1", "2.5:1"},
			CorrectOption: 1,
			Points:        10,
			Difficulty:    DifficultyEasy,
		},
		{
			Type:          TypeScenario,
			Prompt:        "A user reports that they cannot find the search function on your website. How would you approach this UX problem?",
			CorrectOption: -1,
			Points:        15,
			Difficulty:    DifficultyMedium,
		},
		{
			Type:          TypeFileUpload,
			Prompt:        "Create a wireframe for a mobile app login screen. Upload your design.",
			CorrectOption: -1,
			Points:        20,
			Difficulty:    DifficultyMedium,
		},
	},
	"plumber": {
		{
			Type:          TypeMultipleChoice,
			Prompt:        "What is the standard diameter for a main water supply line in residential plumbing?",
			Options:       []string{"1/2 inch", "3/4 inch", "1 inch", "1.5 inches"},
			CorrectOption: 2,
			Points:        10,
			Difficulty:    DifficultyEasy,
		},
		{
			Type:          TypeScenario,
			Prompt:        "A customer calls about low water pressure throughout their house. What are the first three things you would check?",
			CorrectOption: -1,
			Points:        15,
			Difficulty:    DifficultyMedium,
		},
	},
	"yoga-teacher": {
		{
			Type:          TypeMultipleChoice,
			Prompt:        "Which breathing technique is commonly used to calm the nervous system?",
			Options:       []string{"Kapalabhati", "Bhastrika", "Nadi Shodhana", "Ujjayi"},
			CorrectOption: 2,
			Points:        10,
			Difficulty:    DifficultyEasy,
		},
		{
			Type:          TypeScenario,
			Prompt:        "A student in your class has a lower back injury. How would you modify poses for them?",
			CorrectOption: -1,
			Points:        15,
			Difficulty:    DifficultyMedium,
		},
	},
}

// poolFor returns the curated entries for a skill, or nil.
func poolFor(skillID string) []poolEntry {
	return pools[skillID]
}
