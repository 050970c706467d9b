package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/router"
	"github.com/mchawi/sukulu/internal/screen"
	"github.com/mchawi/sukulu/internal/screens/chat"
	"github.com/mchawi/sukulu/internal/screens/picker"
	"github.com/mchawi/sukulu/internal/store"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/mchawi/sukulu/internal/ui/components"
	"github.com/mchawi/sukulu/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	hasTutor  bool
	subjectCt int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The tutor may be nil when no API key is
// configured; the chat entry is disabled in that case.
func New(repo *quiz.Repository, st *store.Store, tut *tutor.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(repo, st, tut)}
			}
		}},
		{Label: "ASK THE TUTOR", Disabled: tut == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(tut)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		hasTutor:  tut != nil,
		subjectCt: len(quiz.Subjects()),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))

	subtitle := "Study companion for Malawian secondary students"
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(subtitle))

	sections = append(sections, h.menu.View())

	if !h.hasTutor {
		sections = append(sections, theme.Hint.Render(
			"Set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY to unlock the tutor."))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
