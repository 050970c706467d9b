package quiz

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestMathGenerate_CountAndShape(t *testing.T) {
	gen := NewMathGeneratorWithRand(testRand(1))

	for _, d := range Difficulties() {
		qs := gen.Generate(25, d)
		if len(qs) != 25 {
			t.Fatalf("Generate(25, %s) returned %d questions, want 25", d, len(qs))
		}
		for _, q := range qs {
			if q.Subject != SubjectMaths {
				t.Errorf("question %s subject = %s, want maths", q.ID, q.Subject)
			}
			if len(q.Options) != 4 {
				t.Errorf("question %s has %d options, want 4", q.ID, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("question %s correct index %d out of range", q.ID, q.CorrectIndex)
			}
			if q.Difficulty != d {
				t.Errorf("question %s difficulty = %s, want %s", q.ID, q.Difficulty, d)
			}
			if q.Explanation == "" {
				t.Errorf("question %s has no explanation", q.ID)
			}
		}
	}
}

func TestMathGenerate_OptionsDistinct(t *testing.T) {
	gen := NewMathGeneratorWithRand(testRand(2))

	for _, q := range gen.Generate(200, DifficultyMedium) {
		seen := make(map[string]bool)
		for _, o := range q.Options {
			if seen[o] {
				t.Fatalf("question %s has duplicate option %q: %v", q.ID, o, q.Options)
			}
			seen[o] = true
		}
	}
}

// The correct option must be the literal answer to the question text.
func TestMathGenerate_ArithmeticAnswers(t *testing.T) {
	gen := NewMathGeneratorWithRand(testRand(3))

	checked := 0
	for _, q := range gen.Generate(300, DifficultyEasy) {
		a, op, b, ok := parseArithmetic(q.Text)
		if !ok {
			continue // percentage or algebra question
		}
		var want int
		switch op {
		case "+":
			want = a + b
		case "-":
			want = a - b
		case "×":
			want = a * b
		case "÷":
			want = a / b
		default:
			continue
		}
		got, err := strconv.Atoi(q.Options[q.CorrectIndex])
		if err != nil {
			t.Fatalf("question %s: non-numeric correct option %q", q.ID, q.Options[q.CorrectIndex])
		}
		if got != want {
			t.Errorf("question %q: correct option %d, want %d", q.Text, got, want)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no arithmetic questions generated in 300 draws")
	}
}

// parseArithmetic parses "What is A op B?" question text.
func parseArithmetic(text string) (a int, op string, b int, ok bool) {
	if !strings.HasPrefix(text, "What is ") {
		return 0, "", 0, false
	}
	text = strings.TrimPrefix(text, "What is ")
	text = strings.TrimSuffix(text, "?")
	parts := strings.Fields(text)
	if len(parts) != 3 {
		return 0, "", 0, false
	}
	var err error
	if a, err = strconv.Atoi(parts[0]); err != nil {
		return 0, "", 0, false
	}
	op = parts[1]
	if b, err = strconv.Atoi(parts[2]); err != nil {
		return 0, "", 0, false
	}
	return a, op, b, true
}

func TestMathGenerate_AlgebraAnswerSolves(t *testing.T) {
	gen := NewMathGeneratorWithRand(testRand(4))

	checked := 0
	for _, q := range gen.Generate(300, DifficultyHard) {
		if !strings.HasPrefix(q.Text, "Solve for x: ") {
			continue
		}
		// "Solve for x: A·x + B = Y"
		eq := strings.TrimPrefix(q.Text, "Solve for x: ")
		var a, b, y int
		if err := parseEquation(eq, &a, &b, &y); err != nil {
			t.Fatalf("question %s: cannot parse %q: %v", q.ID, eq, err)
		}
		x, err := strconv.Atoi(q.Options[q.CorrectIndex])
		if err != nil {
			t.Fatalf("question %s: non-numeric correct option", q.ID)
		}
		if a*x+b != y {
			t.Errorf("question %q: x=%d does not satisfy equation", q.Text, x)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("no algebra questions generated in 300 draws")
	}
}

// parseEquation parses "A·x + B = Y".
func parseEquation(eq string, a, b, y *int) error {
	left, right, _ := strings.Cut(eq, " = ")
	var err error
	if *y, err = strconv.Atoi(strings.TrimSpace(right)); err != nil {
		return err
	}
	axPart, bPart, _ := strings.Cut(left, " + ")
	if *b, err = strconv.Atoi(strings.TrimSpace(bPart)); err != nil {
		return err
	}
	aStr := strings.TrimSuffix(strings.TrimSpace(axPart), "·x")
	if *a, err = strconv.Atoi(aStr); err != nil {
		return err
	}
	return nil
}

// Same arguments, fresh randomness: shape is stable, values are not
// asserted.
func TestMathGenerate_SchemaStableAcrossCalls(t *testing.T) {
	gen := NewMathGenerator()

	first := gen.Generate(10, DifficultyMedium)
	second := gen.Generate(10, DifficultyMedium)
	if len(first) != len(second) {
		t.Fatalf("batch lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Options) != len(second[i].Options) {
			t.Errorf("option counts differ at %d", i)
		}
	}
}
