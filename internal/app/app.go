// Package app owns the root Bubble Tea model: global keys, the frame
// around the active screen, and program startup.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/router"
	"github.com/mchawi/sukulu/internal/screen"
	"github.com/mchawi/sukulu/internal/screens/home"
	"github.com/mchawi/sukulu/internal/store"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/mchawi/sukulu/internal/ui/layout"
)

// Options carries the app's injected dependencies.
type Options struct {
	Repository *quiz.Repository
	Store      *store.Store

	// Tutor is nil when no provider is configured; tutor features are
	// hidden in that case.
	Tutor *tutor.Service

	// PlayerName is shown in the header once known.
	PlayerName string

	// InitialScreen, when set, is pushed over the home screen at startup
	// so `sukulu play` lands straight in a quiz.
	InitialScreen screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	playerName string
	width      int
	height     int
	initCmd    tea.Cmd
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Repository, opts.Store, opts.Tutor)
	r := router.New(homeScreen)
	initCmd := homeScreen.Init()
	if opts.InitialScreen != nil {
		initCmd = tea.Batch(initCmd, r.Push(opts.InitialScreen))
	}
	return AppModel{
		router:     r,
		playerName: opts.PlayerName,
		initCmd:    initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.playerName, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
