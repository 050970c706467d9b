package quiz

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
)

// MathGenerator synthesizes maths questions on demand: arithmetic,
// percentage change, and one-step linear algebra. It can always produce
// an arbitrary number of questions.
type MathGenerator struct {
	rng *rand.Rand
}

// NewMathGenerator creates a generator with its own PCG source.
func NewMathGenerator() *MathGenerator {
	return &MathGenerator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewMathGeneratorWithRand creates a generator with an injected source,
// for reproducible tests.
func NewMathGeneratorWithRand(rng *rand.Rand) *MathGenerator {
	return &MathGenerator{rng: rng}
}

// Generate returns exactly count maths questions.
func (g *MathGenerator) Generate(count int, difficulty Difficulty) []Question {
	questions := make([]Question, 0, count)
	for i := range count {
		switch g.rng.IntN(3) {
		case 0:
			questions = append(questions, g.makeArithmetic(i, difficulty))
		case 1:
			questions = append(questions, g.makePercentage(i, difficulty))
		default:
			questions = append(questions, g.makeAlgebra(i, difficulty))
		}
	}
	return questions
}

// rangeFor returns the inclusive operand range for a difficulty.
func rangeFor(d Difficulty) (lo, hi int) {
	switch d {
	case DifficultyEasy:
		return 1, 20
	case DifficultyHard:
		return 25, 150
	default:
		return 10, 60
	}
}

func (g *MathGenerator) draw(d Difficulty) int {
	lo, hi := rangeFor(d)
	return lo + g.rng.IntN(hi-lo+1)
}

var operators = []string{"+", "-", "×", "÷"}

func (g *MathGenerator) makeArithmetic(id int, d Difficulty) Question {
	a := g.draw(d)
	b := g.draw(d)
	op := operators[g.rng.IntN(len(operators))]

	var text string
	var correct int
	switch op {
	case "+":
		text = fmt.Sprintf("What is %d + %d?", a, b)
		correct = a + b
	case "-":
		text = fmt.Sprintf("What is %d - %d?", a, b)
		correct = a - b
	case "×":
		text = fmt.Sprintf("What is %d × %d?", a, b)
		correct = a * b
	default:
		// Phrase division so the quotient is a whole number.
		text = fmt.Sprintf("What is %d ÷ %d?", a*b, a)
		correct = b
	}

	options, correctIndex := g.buildOptions(correct)
	return Question{
		ID:           fmt.Sprintf("MATH-%d", id),
		Subject:      SubjectMaths,
		Text:         text,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  fmt.Sprintf("Basic arithmetic: result = %d", correct),
		Difficulty:   d,
	}
}

var percentMenu = []int{5, 10, 12, 15, 20, 25, 30}

func (g *MathGenerator) makePercentage(id int, d Difficulty) Question {
	base := g.draw(d)
	percent := percentMenu[g.rng.IntN(len(percentMenu))]
	increase := g.rng.IntN(2) == 0

	factor := 1 - float64(percent)/100
	word := "decreased"
	if increase {
		factor = 1 + float64(percent)/100
		word = "increased"
	}
	correct := int(math.Round(float64(base) * factor))

	text := fmt.Sprintf(
		"A value is %s by %d%%. If the original was %d, what is the new value (nearest whole number)?",
		word, percent, base,
	)

	options, correctIndex := g.buildOptions(correct)
	return Question{
		ID:           fmt.Sprintf("MATH-P%d", id),
		Subject:      SubjectMaths,
		Text:         text,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  fmt.Sprintf("New = %d × (1 ± %d/100) = %d", base, percent, correct),
		Difficulty:   d,
	}
}

func (g *MathGenerator) makeAlgebra(id int, d Difficulty) Question {
	a := max(1, g.draw(d))
	x := g.draw(d)
	b := g.draw(d)
	y := a*x + b

	text := fmt.Sprintf("Solve for x: %d·x + %d = %d", a, b, y)
	options, correctIndex := g.buildOptions(x)
	return Question{
		ID:           fmt.Sprintf("MATH-A%d", id),
		Subject:      SubjectMaths,
		Text:         text,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  fmt.Sprintf("x = (y - b)/a = (%d - %d)/%d = %d", y, b, a, x),
		Difficulty:   d,
	}
}

// buildOptions produces four shuffled answer strings: the correct value
// plus three distinct wrong values offset by a nonzero amount in [-10, 10).
// Returns the options and the index of the correct one.
func (g *MathGenerator) buildOptions(correct int) ([]string, int) {
	wrongs := make(map[int]bool, 3)
	for len(wrongs) < 3 {
		offset := g.rng.IntN(20) - 10
		if offset == 0 {
			continue
		}
		wrongs[correct+offset] = true
	}

	options := make([]string, 0, 4)
	options = append(options, strconv.Itoa(correct))
	for w := range wrongs {
		options = append(options, strconv.Itoa(w))
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctStr := strconv.Itoa(correct)
	for i, o := range options {
		if o == correctStr {
			return options, i
		}
	}
	// Unreachable: the correct string is always present.
	return options, 0
}
