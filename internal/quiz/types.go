package quiz

import "fmt"

// Question is a single multiple-choice question ready for display.
// Questions are immutable once produced by a source.
type Question struct {
	// ID is unique within a batch, e.g. "MATH-3" or "biology-12".
	ID string

	// Subject the question belongs to. Never SubjectRandom on a
	// produced question.
	Subject Subject

	// Text is the question prompt.
	Text string

	// Options holds the answer choices in display order. At least 2.
	Options []string

	// CorrectIndex is the index of the correct option. Always a valid
	// index into Options.
	CorrectIndex int

	// Explanation is an optional worked solution shown after answering.
	Explanation string

	// Difficulty the question was produced for.
	Difficulty Difficulty
}

// Subject identifies a question category.
type Subject string

const (
	SubjectMalawiHistory Subject = "malawi_history"
	SubjectBiology       Subject = "biology"
	SubjectMaths         Subject = "maths"
	SubjectAgriculture   Subject = "agriculture"

	// SubjectRandom is a meta-subject: sample across all concrete subjects.
	SubjectRandom Subject = "random"
)

// Subjects lists the concrete subjects in display order.
func Subjects() []Subject {
	return []Subject{SubjectMalawiHistory, SubjectBiology, SubjectMaths, SubjectAgriculture}
}

// ParseSubject maps a CLI-friendly name to a Subject.
func ParseSubject(s string) (Subject, error) {
	switch s {
	case "history", "malawi_history", "malawi-history":
		return SubjectMalawiHistory, nil
	case "biology", "bio":
		return SubjectBiology, nil
	case "maths", "math":
		return SubjectMaths, nil
	case "agriculture", "agri":
		return SubjectAgriculture, nil
	case "random", "mixed":
		return SubjectRandom, nil
	}
	return "", fmt.Errorf("unknown subject: %q", s)
}

// DisplayName returns the subject name for headers and menus.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectMalawiHistory:
		return "Malawi History"
	case SubjectBiology:
		return "Biology"
	case SubjectMaths:
		return "Maths"
	case SubjectAgriculture:
		return "Agriculture"
	case SubjectRandom:
		return "Mixed Bag"
	}
	return string(s)
}

// Difficulty controls the numeric ranges of generated maths questions.
// Fact banks accept it but do not filter on it.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all difficulties in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a CLI-friendly name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "med":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// DisplayName returns the difficulty name for menus.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return string(d)
}

// Source produces a batch of questions. Implementations are stateless
// with respect to any session: each call returns a fresh batch.
type Source interface {
	// Generate returns up to count questions. Sources backed by a fixed
	// pool may return fewer when the pool runs short.
	Generate(count int, difficulty Difficulty) []Question
}
