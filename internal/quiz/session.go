package quiz

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// AutoAdvanceDelay is how long feedback stays on screen before the host
// should trigger the automatic advance.
const AutoAdvanceDelay = 1200 * time.Millisecond

// Phase is the session's position in its answer/feedback/finish cycle.
type Phase int

const (
	// PhaseAnswering: a question is on screen and no answer has been
	// checked yet.
	PhaseAnswering Phase = iota

	// PhaseFeedback: the answer has been checked and correctness is on
	// display.
	PhaseFeedback

	// PhaseFinished: the last question has been dealt with.
	PhaseFinished
)

// Session drives one quiz attempt through a fixed question list. It is
// single-owner, single-writer: all mutation goes through its transition
// methods, and illegal transitions are silent no-ops so that the host
// and a pending auto-advance can race without error handling.
type Session struct {
	id        string
	questions []Question

	index    int
	selected int
	score    int

	hintUsed    bool
	masked      map[int]bool
	phase       Phase
	lastCorrect bool

	// generation increments on every phase change. A scheduled
	// auto-advance captures the value at scheduling time and becomes a
	// no-op once the session has moved on.
	generation uint64

	rng *rand.Rand
}

// NewSession starts a session over questions. An empty list produces an
// already-finished session; the host should check Empty and report
// "no questions available".
func NewSession(questions []Question) *Session {
	s := &Session{
		id:  uuid.New().String(),
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	s.Restart(questions)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Restart resets all progress and replaces the question list. Callers
// re-fetch from the repository first so a restart gets a fresh batch.
func (s *Session) Restart(questions []Question) {
	s.questions = questions
	s.index = 0
	s.selected = -1
	s.score = 0
	s.hintUsed = false
	s.masked = make(map[int]bool)
	s.lastCorrect = false
	s.generation++
	if len(questions) == 0 {
		s.phase = PhaseFinished
		return
	}
	s.phase = PhaseAnswering
}

// Empty reports whether the session has no questions at all.
func (s *Session) Empty() bool {
	return len(s.questions) == 0
}

// Current returns the question on display. ok is false once finished or
// when the session is empty.
func (s *Session) Current() (Question, bool) {
	if s.phase == PhaseFinished || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in this session.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Selected returns the chosen option index, or -1 when none is chosen.
func (s *Session) Selected() int { return s.selected }

// LastCorrect reports whether the most recently checked answer was
// correct. Only meaningful in PhaseFeedback.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// HintUsed reports whether the fifty-fifty has been spent on the
// current question.
func (s *Session) HintUsed() bool { return s.hintUsed }

// Masked reports whether option i is hidden by the fifty-fifty.
func (s *Session) Masked(i int) bool { return s.masked[i] }

// MaskedCount returns how many options are currently hidden.
func (s *Session) MaskedCount() int { return len(s.masked) }

// Generation returns the current transition counter, captured by hosts
// when scheduling an auto-advance.
func (s *Session) Generation() uint64 { return s.generation }

// Select records the chosen option. Legal only while answering, for a
// valid, unmasked index; anything else is a no-op.
func (s *Session) Select(i int) {
	if s.phase != PhaseAnswering {
		return
	}
	q, ok := s.Current()
	if !ok || i < 0 || i >= len(q.Options) || s.masked[i] {
		return
	}
	s.selected = i
}

// UseHint spends the fifty-fifty: up to two wrong options, chosen
// uniformly, are masked. Legal once per question, only while answering.
// The correct option is never masked.
func (s *Session) UseHint() {
	if s.phase != PhaseAnswering || s.hintUsed {
		return
	}
	q, ok := s.Current()
	if !ok {
		return
	}

	wrongs := make([]int, 0, len(q.Options)-1)
	for i := range q.Options {
		if i != q.CorrectIndex {
			wrongs = append(wrongs, i)
		}
	}
	s.rng.Shuffle(len(wrongs), func(i, j int) {
		wrongs[i], wrongs[j] = wrongs[j], wrongs[i]
	})
	if len(wrongs) > 2 {
		wrongs = wrongs[:2]
	}

	s.hintUsed = true
	for _, i := range wrongs {
		s.masked[i] = true
		if s.selected == i {
			s.selected = -1
		}
	}
}

// Submit checks the selected answer and moves to feedback. A no-op
// without a selection or outside the answering phase.
func (s *Session) Submit() {
	if s.phase != PhaseAnswering || s.selected == -1 {
		return
	}
	q, ok := s.Current()
	if !ok {
		return
	}
	s.lastCorrect = s.selected == q.CorrectIndex
	if s.lastCorrect {
		s.score++
	}
	s.phase = PhaseFeedback
	s.generation++
}

// Advance moves past the feedback: to the next question, or to the
// finished state after the last one. Per-question state (selection,
// mask, hint) resets so the fifty-fifty is available again.
func (s *Session) Advance() {
	if s.phase != PhaseFeedback {
		return
	}
	s.generation++
	if s.index >= len(s.questions)-1 {
		s.phase = PhaseFinished
		return
	}
	s.index++
	s.selected = -1
	s.hintUsed = false
	s.masked = make(map[int]bool)
	s.lastCorrect = false
	s.phase = PhaseAnswering
}

// AutoAdvance performs Advance only if the session is still in the
// feedback state it was in when gen was captured. A manual advance,
// restart, or any other phase change in the meantime makes this a no-op.
func (s *Session) AutoAdvance(gen uint64) {
	if s.phase != PhaseFeedback || s.generation != gen {
		return
	}
	s.Advance()
}

// Percent returns the final score as a whole percentage.
func (s *Session) Percent() int {
	return s.score * 100 / max(1, len(s.questions))
}
