// Package quiz hosts a running quiz session: question display, answer
// keys, the fifty-fifty hint, timed feedback, and the hand-off to the
// summary screen.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/router"
	"github.com/mchawi/sukulu/internal/screen"
	"github.com/mchawi/sukulu/internal/screens/summary"
	"github.com/mchawi/sukulu/internal/store"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/mchawi/sukulu/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	repo  *engine.Repository
	tut   *tutor.Service
	prefs store.Preferences

	sess   *engine.Session
	cursor int

	showingQuitConfirm bool

	// Tutor review of the current question, shown instead of the plain
	// feedback line. While loading or visible, the auto-advance is held.
	explaining    bool
	reviewLoading bool
	review        *tutor.Review
	reviewErr     error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates a quiz screen for the given setup. Questions are fetched
// in Init.
func New(repo *engine.Repository, tut *tutor.Service, prefs store.Preferences) *QuizScreen {
	return &QuizScreen{
		repo:  repo,
		tut:   tut,
		prefs: prefs,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		qs := s.repo.Fetch(s.prefs.Subject, s.prefs.Length, s.prefs.Difficulty)
		return questionsReadyMsg{Questions: qs}
	}
}

func (s *QuizScreen) Title() string {
	return s.prefs.Subject.DisplayName()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.sess == nil {
		return nil
	}
	switch s.sess.Phase() {
	case engine.PhaseFeedback:
		hints := []layout.KeyHint{{Key: "any key", Description: "Next"}}
		if s.canExplain() {
			hints = append([]layout.KeyHint{{Key: "E", Description: "Explain"}}, hints...)
		}
		return hints
	case engine.PhaseAnswering:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
		if !s.sess.HintUsed() {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "50/50"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
		return hints
	}
	return nil
}

// HandlesEsc claims Esc while a quiz is in progress so leaving goes
// through the confirm dialog.
func (s *QuizScreen) HandlesEsc() bool {
	if s.showingQuitConfirm {
		return true
	}
	return s.sess != nil && !s.sess.Empty() && s.sess.Phase() != engine.PhaseFinished
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		s.sess = engine.NewSession(msg.Questions)
		s.resetCursor()
		return s, nil

	case autoAdvanceMsg:
		return s.handleAutoAdvance(msg)

	case reviewMsg:
		s.reviewLoading = false
		s.review = msg.Review
		s.reviewErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleAutoAdvance(msg autoAdvanceMsg) (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.explaining {
		return s, nil
	}
	s.sess.AutoAdvance(msg.Gen)
	return s.afterAdvance()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.sess == nil {
		return s, nil
	}

	// Empty batch: any key goes back.
	if s.sess.Empty() {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.sess.Phase() {
	case engine.PhaseAnswering:
		return s.handleAnsweringKey(key)
	case engine.PhaseFeedback:
		return s.handleFeedbackKey(key)
	case engine.PhaseFinished:
		return s.finish()
	}
	return s, nil
}

func (s *QuizScreen) handleAnsweringKey(key string) (screen.Screen, tea.Cmd) {
	q, ok := s.sess.Current()
	if !ok {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "up", "k":
		s.moveCursor(-1, len(q.Options))
		return s, nil
	case "down", "j":
		s.moveCursor(1, len(q.Options))
		return s, nil
	case "h", "H":
		s.sess.UseHint()
		if s.sess.Masked(s.cursor) {
			s.resetCursor()
		}
		return s, nil
	case "enter":
		s.sess.Select(s.cursor)
		return s.submit()
	case "1", "2", "3", "4", "5", "6":
		i := int(key[0] - '1')
		if i < len(q.Options) && !s.sess.Masked(i) {
			s.cursor = i
			s.sess.Select(i)
			return s.submit()
		}
		return s, nil
	}
	return s, nil
}

// submit checks the answer and, when it lands, schedules the automatic
// advance for this feedback display.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	s.sess.Submit()
	if s.sess.Phase() != engine.PhaseFeedback {
		return s, nil
	}

	gen := s.sess.Generation()
	return s, tea.Tick(engine.AutoAdvanceDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Gen: gen}
	})
}

func (s *QuizScreen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	if (key == "e" || key == "E") && s.canExplain() && !s.explaining {
		s.explaining = true
		s.reviewLoading = true
		return s, s.fetchReview()
	}
	if s.reviewLoading {
		return s, nil
	}
	s.sess.Advance()
	return s.afterAdvance()
}

// canExplain reports whether the tutor can walk through the current
// question: feedback is showing, the answer was wrong, and a provider
// is configured.
func (s *QuizScreen) canExplain() bool {
	return s.tut != nil && s.sess != nil &&
		s.sess.Phase() == engine.PhaseFeedback && !s.sess.LastCorrect()
}

// fetchReview asks the tutor for a walkthrough of the current question.
func (s *QuizScreen) fetchReview() tea.Cmd {
	q, ok := s.sess.Current()
	if !ok {
		return nil
	}
	selected := s.sess.Selected()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		review, err := s.tut.Explain(ctx, q, selected)
		return reviewMsg{Review: review, Err: err}
	}
}

// afterAdvance routes to the next question or the summary.
func (s *QuizScreen) afterAdvance() (screen.Screen, tea.Cmd) {
	s.explaining = false
	s.reviewLoading = false
	s.review = nil
	s.reviewErr = nil

	if s.sess.Phase() == engine.PhaseFinished {
		return s.finish()
	}
	s.resetCursor()
	return s, nil
}

// finish replaces this screen with the summary so Esc from there goes
// home rather than back into a finished quiz.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	result := summary.Result{
		PlayerName: s.prefs.PlayerName,
		Subject:    s.prefs.Subject,
		Difficulty: s.prefs.Difficulty,
		Score:      s.sess.Score(),
		Total:      s.sess.Total(),
		Percent:    s.sess.Percent(),
	}
	repo, tut, prefs := s.repo, s.tut, s.prefs
	replay := func() screen.Screen {
		return New(repo, tut, prefs)
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result, replay)}
	}
}

// moveCursor steps over masked options in the given direction.
func (s *QuizScreen) moveCursor(dir, n int) {
	for i := s.cursor + dir; i >= 0 && i < n; i += dir {
		if !s.sess.Masked(i) {
			s.cursor = i
			return
		}
	}
}

// resetCursor puts the cursor on the first unmasked option.
func (s *QuizScreen) resetCursor() {
	s.cursor = 0
	q, ok := s.sess.Current()
	if !ok {
		return
	}
	for i := range q.Options {
		if !s.sess.Masked(i) {
			s.cursor = i
			return
		}
	}
}
