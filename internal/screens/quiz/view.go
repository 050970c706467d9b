package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/ui/components"
	"github.com/mchawi/sukulu/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.sess == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your quiz...")
	}
	if s.sess.Empty() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n\n  No questions available for this subject.\n\n  Press any key to go back.")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	q, ok := s.sess.Current()
	if !ok {
		return b.String()
	}

	list := components.OptionList{
		Question:     q.Text,
		Options:      q.Options,
		Cursor:       s.cursor,
		Masked:       s.sess.Masked,
		ShowFeedback: s.sess.Phase() == engine.PhaseFeedback,
		CorrectIndex: q.CorrectIndex,
		ChosenIndex:  s.sess.Selected(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.View()))

	if s.sess.Phase() == engine.PhaseFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width, q))
	}

	return b.String()
}

// renderInfoLine shows progress, score, and hint availability.
func (s *QuizScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.prefs.Subject.DisplayName(), s.prefs.Difficulty.DisplayName()))

	hint := "50/50 ready"
	if s.sess.HintUsed() {
		hint = "50/50 spent"
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s",
			s.sess.Index()+1,
			s.sess.Total(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.sess.Score(),
			hint,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderFeedback shows the verdict, the explanation, and the tutor
// review when one was requested.
func (s *QuizScreen) renderFeedback(width int, q engine.Question) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.sess.LastCorrect() {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Zabwino! Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Options[q.CorrectIndex])))
	}
	b.WriteString("\n")

	if q.Explanation != "" && !s.explaining {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	switch {
	case s.reviewLoading:
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Asking the tutor..."))
	case s.reviewErr != nil:
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Error).Render("The tutor is not answering right now."))
	case s.review != nil:
		b.WriteString("\n")
		b.WriteString(s.renderReview(width))
	}

	return b.String()
}

func (s *QuizScreen) renderReview(width int) string {
	var b strings.Builder

	b.WriteString(theme.Selected.Render("Tutor: ") + s.review.Summary + "\n")
	for i, step := range s.review.Steps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}
	if s.review.Pitfall != "" {
		b.WriteString(theme.Hint.Render("Watch out: "+s.review.Pitfall) + "\n")
	}
	if s.review.Encouragement != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(s.review.Encouragement) + "\n")
	}

	block := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Your score will not be kept."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))

	return b.String()
}
