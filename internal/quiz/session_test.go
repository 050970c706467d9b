package quiz

import (
	"fmt"
	"testing"
)

func sessionQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range n {
		qs[i] = Question{
			ID:           fmt.Sprintf("Q-%d", i),
			Subject:      SubjectMaths,
			Text:         fmt.Sprintf("Question %d?", i),
			Options:      []string{"w1", "correct", "w2", "w3"},
			CorrectIndex: 1,
		}
	}
	return qs
}

func TestSession_FullCorrectRun(t *testing.T) {
	s := NewSession(sessionQuestions(5))

	for i := range 5 {
		if s.Index() != i {
			t.Fatalf("index = %d, want %d", s.Index(), i)
		}
		if s.Phase() != PhaseAnswering {
			t.Fatalf("phase = %v, want answering", s.Phase())
		}
		s.Select(1)
		s.Submit()
		if s.Phase() != PhaseFeedback {
			t.Fatalf("phase after submit = %v, want feedback", s.Phase())
		}
		if !s.LastCorrect() {
			t.Fatalf("answer %d judged incorrect", i)
		}
		s.Advance()
	}

	if s.Phase() != PhaseFinished {
		t.Errorf("phase after last advance = %v, want finished", s.Phase())
	}
	if s.Score() != 5 {
		t.Errorf("score = %d, want 5", s.Score())
	}
	if s.Percent() != 100 {
		t.Errorf("percent = %d, want 100", s.Percent())
	}
}

func TestSession_WrongAnswerScoresNothing(t *testing.T) {
	s := NewSession(sessionQuestions(2))

	s.Select(0)
	s.Submit()
	if s.LastCorrect() {
		t.Error("wrong answer judged correct")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestSession_SubmitWithoutSelectionIsNoop(t *testing.T) {
	s := NewSession(sessionQuestions(2))

	s.Submit()
	if s.Phase() != PhaseAnswering {
		t.Errorf("submit without selection changed phase to %v", s.Phase())
	}
}

func TestSession_SelectValidation(t *testing.T) {
	s := NewSession(sessionQuestions(2))

	s.Select(-1)
	s.Select(4)
	if s.Selected() != -1 {
		t.Errorf("out-of-range select recorded: %d", s.Selected())
	}

	s.Select(2)
	if s.Selected() != 2 {
		t.Errorf("selected = %d, want 2", s.Selected())
	}

	// Selection is locked once feedback is showing.
	s.Submit()
	s.Select(0)
	if s.Selected() != 2 {
		t.Errorf("select during feedback changed selection to %d", s.Selected())
	}
}

func TestSession_HintMasksTwoWrongOptions(t *testing.T) {
	s := NewSession(sessionQuestions(1))

	s.UseHint()
	if !s.HintUsed() {
		t.Fatal("hint not marked used")
	}
	if s.MaskedCount() != 2 {
		t.Fatalf("masked %d options, want 2", s.MaskedCount())
	}
	if s.Masked(1) {
		t.Error("correct option was masked")
	}

	// Masked options cannot be selected.
	for i := range 4 {
		if s.Masked(i) {
			s.Select(i)
			if s.Selected() == i {
				t.Errorf("masked option %d was selectable", i)
			}
		}
	}
}

func TestSession_SecondHintIsNoop(t *testing.T) {
	s := NewSession(sessionQuestions(1))

	s.UseHint()
	before := make(map[int]bool)
	for i := range 4 {
		before[i] = s.Masked(i)
	}

	s.UseHint()
	for i := range 4 {
		if s.Masked(i) != before[i] {
			t.Errorf("second hint changed mask state of option %d", i)
		}
	}
}

func TestSession_HintClearsMaskedSelection(t *testing.T) {
	// Select every wrong option in turn; whichever is selected when the
	// mask lands on it must be cleared.
	for range 20 {
		s := NewSession(sessionQuestions(1))
		s.Select(0)
		s.UseHint()
		if s.Masked(0) && s.Selected() == 0 {
			t.Fatal("selection still points at a masked option")
		}
	}
}

func TestSession_HintAvailableAgainNextQuestion(t *testing.T) {
	s := NewSession(sessionQuestions(2))

	s.UseHint()
	s.Select(1)
	s.Submit()
	s.Advance()

	if s.HintUsed() {
		t.Error("hint still marked used on the next question")
	}
	if s.MaskedCount() != 0 {
		t.Errorf("mask carried over: %d options masked", s.MaskedCount())
	}
}

func TestSession_HintDuringFeedbackIsNoop(t *testing.T) {
	s := NewSession(sessionQuestions(1))

	s.Select(1)
	s.Submit()
	s.UseHint()
	if s.HintUsed() || s.MaskedCount() != 0 {
		t.Error("hint applied during feedback")
	}
}

func TestSession_AdvanceOnLastQuestionFinishes(t *testing.T) {
	s := NewSession(sessionQuestions(1))

	s.Select(1)
	s.Submit()
	s.Advance()
	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", s.Phase())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() still returns a question after finish")
	}
}

func TestSession_AutoAdvanceStaleGenerationIsNoop(t *testing.T) {
	s := NewSession(sessionQuestions(3))

	s.Select(1)
	s.Submit()
	gen := s.Generation()

	// Manual advance beats the timer.
	s.Advance()
	index := s.Index()

	s.AutoAdvance(gen)
	if s.Index() != index {
		t.Errorf("stale auto-advance moved index from %d to %d", index, s.Index())
	}
	if s.Phase() != PhaseAnswering {
		t.Errorf("stale auto-advance changed phase to %v", s.Phase())
	}
}

func TestSession_AutoAdvanceCurrentGenerationFires(t *testing.T) {
	s := NewSession(sessionQuestions(3))

	s.Select(1)
	s.Submit()
	s.AutoAdvance(s.Generation())

	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}
	if s.Phase() != PhaseAnswering {
		t.Errorf("phase = %v, want answering", s.Phase())
	}
}

func TestSession_AutoAdvanceAfterRestartIsNoop(t *testing.T) {
	s := NewSession(sessionQuestions(2))

	s.Select(1)
	s.Submit()
	gen := s.Generation()

	s.Restart(sessionQuestions(2))
	s.AutoAdvance(gen)
	if s.Index() != 0 || s.Phase() != PhaseAnswering {
		t.Error("auto-advance from before a restart changed state")
	}
}

func TestSession_RestartResetsEverything(t *testing.T) {
	s := NewSession(sessionQuestions(2))

	s.UseHint()
	s.Select(1)
	s.Submit()
	s.Advance()
	s.Select(1)
	s.Submit()
	s.Advance()
	if s.Phase() != PhaseFinished {
		t.Fatalf("setup: phase = %v, want finished", s.Phase())
	}

	s.Restart(sessionQuestions(3))
	if s.Phase() != PhaseAnswering {
		t.Errorf("phase = %v, want answering", s.Phase())
	}
	if s.Index() != 0 || s.Score() != 0 || s.Selected() != -1 {
		t.Errorf("progress not reset: index=%d score=%d selected=%d",
			s.Index(), s.Score(), s.Selected())
	}
	if s.HintUsed() || s.MaskedCount() != 0 {
		t.Error("hint state not reset")
	}
	if s.Total() != 3 {
		t.Errorf("total = %d, want 3", s.Total())
	}
}

func TestSession_EmptyQuestionList(t *testing.T) {
	s := NewSession(nil)

	if !s.Empty() {
		t.Error("Empty() = false for empty session")
	}
	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", s.Phase())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() returned a question for an empty session")
	}

	// Every operation must be a harmless no-op.
	s.Select(0)
	s.UseHint()
	s.Submit()
	s.Advance()
	s.AutoAdvance(s.Generation())

	if s.Percent() != 0 {
		t.Errorf("percent = %d, want 0", s.Percent())
	}
}

func TestSession_IndexInvariant(t *testing.T) {
	s := NewSession(sessionQuestions(4))

	for s.Phase() != PhaseFinished {
		if s.Index() < 0 || s.Index() >= s.Total() {
			t.Fatalf("index %d out of range [0, %d)", s.Index(), s.Total())
		}
		s.Select(1)
		s.Submit()
		s.Advance()
	}
}

func TestSession_TwoOptionQuestionMasksOne(t *testing.T) {
	qs := []Question{{
		ID: "Q-0", Subject: SubjectBiology, Text: "t?",
		Options: []string{"yes", "no"}, CorrectIndex: 0,
	}}
	s := NewSession(qs)

	s.UseHint()
	if s.MaskedCount() != 1 {
		t.Errorf("masked %d options, want 1 (only one wrong option exists)", s.MaskedCount())
	}
	if s.Masked(0) {
		t.Error("correct option was masked")
	}
}

func TestGradeFor_Bands(t *testing.T) {
	tests := []struct {
		percent int
		emoji   string
	}{
		{100, "🏆"},
		{90, "🏆"},
		{89, "🎉"},
		{70, "🎉"},
		{69, "👍"},
		{50, "👍"},
		{49, "🌱"},
		{0, "🌱"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.percent); got.Emoji != tt.emoji {
			t.Errorf("GradeFor(%d).Emoji = %s, want %s", tt.percent, got.Emoji, tt.emoji)
		}
	}
}
