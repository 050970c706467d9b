// Package summary shows the end-of-quiz result and offers a rematch.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/router"
	"github.com/mchawi/sukulu/internal/screen"
	"github.com/mchawi/sukulu/internal/ui/components"
	"github.com/mchawi/sukulu/internal/ui/layout"
	"github.com/mchawi/sukulu/internal/ui/theme"
)

// Result is the finished quiz outcome handed over by the quiz screen.
type Result struct {
	PlayerName string
	Subject    quiz.Subject
	Difficulty quiz.Difficulty
	Score      int
	Total      int
	Percent    int
}

// SummaryScreen displays the result with a grade message.
type SummaryScreen struct {
	result Result
	grade  quiz.Grade
	menu   components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary. replay builds a fresh quiz screen with the
// same setup when the player goes again.
func New(result Result, replay func() screen.Screen) *SummaryScreen {
	items := []components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: replay()}
			}
		}},
		{Label: "HOME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PopScreenMsg{}
			}
		}},
	}

	return &SummaryScreen{
		result: result,
		grade:  quiz.GradeFor(result.Percent),
		menu:   components.NewMenu(items),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	var sections []string

	heading := "Quiz complete!"
	if s.result.PlayerName != "" {
		heading = fmt.Sprintf("Quiz complete, %s!", s.result.PlayerName)
	}
	sections = append(sections, theme.Title.Render(heading))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", s.result.Subject.DisplayName(), s.result.Difficulty.DisplayName())))

	score := fmt.Sprintf("%s  %d / %d  (%d%%)",
		s.grade.Emoji, s.result.Score, s.result.Total, s.result.Percent)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(score))

	sections = append(sections, theme.Body.Render(s.grade.Message))

	bar := components.NewProgressBar("", float64(s.result.Percent)/100, true, min(width-20, 50))
	sections = append(sections, bar.View())

	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n\n")
	card := theme.Card.Render(content)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
