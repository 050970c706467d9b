// Package picker is the quiz setup form: player name, subject,
// difficulty, and quiz length, remembered between runs.
package picker

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mchawi/sukulu/internal/quiz"
	"github.com/mchawi/sukulu/internal/router"
	"github.com/mchawi/sukulu/internal/screen"
	quizscreen "github.com/mchawi/sukulu/internal/screens/quiz"
	"github.com/mchawi/sukulu/internal/store"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/mchawi/sukulu/internal/ui/components"
	"github.com/mchawi/sukulu/internal/ui/layout"
	"github.com/mchawi/sukulu/internal/ui/theme"
)

// Form rows, top to bottom.
const (
	rowName = iota
	rowSubject
	rowDifficulty
	rowLength
	rowStart
	rowCount
)

var lengthChoices = []int{5, 10, 15, 20}

// prefsLoadedMsg delivers the stored preferences.
type prefsLoadedMsg struct {
	Prefs store.Preferences
	Err   error
}

// PickerScreen lets the player set up a quiz before starting it.
type PickerScreen struct {
	repo *quiz.Repository
	st   *store.Store
	tut  *tutor.Service

	name       components.TextInput
	subjects   []quiz.Subject
	subject    int
	difficulty int
	length     int
	row        int
	loaded     bool
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the setup screen.
func New(repo *quiz.Repository, st *store.Store, tut *tutor.Service) *PickerScreen {
	subjects := append([]quiz.Subject{quiz.SubjectRandom}, quiz.Subjects()...)
	return &PickerScreen{
		repo:       repo,
		st:         st,
		tut:        tut,
		name:       components.NewTextInput("Your name...", false, 24),
		subjects:   subjects,
		difficulty: 1,
		length:     1,
		row:        rowName,
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return tea.Batch(p.loadPrefs(), p.name.Init())
}

func (p *PickerScreen) Title() string {
	return "New Quiz"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// loadPrefs reads the remembered setup from the store.
func (p *PickerScreen) loadPrefs() tea.Cmd {
	return func() tea.Msg {
		if p.st == nil {
			return prefsLoadedMsg{Prefs: store.DefaultPreferences()}
		}
		prefs, err := p.st.Preferences(context.Background())
		return prefsLoadedMsg{Prefs: prefs, Err: err}
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case prefsLoadedMsg:
		p.loaded = true
		if msg.Err != nil {
			return p, nil
		}
		p.applyPrefs(msg.Prefs)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.row == rowName {
		var cmd tea.Cmd
		p.name, cmd = p.name.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PickerScreen) applyPrefs(prefs store.Preferences) {
	if prefs.PlayerName != "" {
		p.name.Model.SetValue(prefs.PlayerName)
	}
	if i := slices.Index(p.subjects, prefs.Subject); i >= 0 {
		p.subject = i
	}
	if i := slices.Index(quiz.Difficulties(), prefs.Difficulty); i >= 0 {
		p.difficulty = i
	}
	if i := slices.Index(lengthChoices, prefs.Length); i >= 0 {
		p.length = i
	}
}

func (p *PickerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up":
		if p.row > 0 {
			p.row--
		}
		return p, nil
	case "down", "tab":
		if p.row < rowCount-1 {
			p.row++
		}
		return p, nil
	case "left":
		p.cycle(-1)
		return p, nil
	case "right":
		p.cycle(1)
		return p, nil
	case "enter":
		if p.row == rowStart {
			return p, p.start()
		}
		p.row++
		return p, nil
	}

	if p.row == rowName {
		var cmd tea.Cmd
		p.name, cmd = p.name.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *PickerScreen) cycle(dir int) {
	wrap := func(v, n int) int { return ((v+dir)%n + n) % n }
	switch p.row {
	case rowSubject:
		p.subject = wrap(p.subject, len(p.subjects))
	case rowDifficulty:
		p.difficulty = wrap(p.difficulty, len(quiz.Difficulties()))
	case rowLength:
		p.length = wrap(p.length, len(lengthChoices))
	}
}

// start persists the chosen setup and replaces this screen with the
// running quiz, so Esc from the quiz returns straight home.
func (p *PickerScreen) start() tea.Cmd {
	prefs := store.Preferences{
		PlayerName: strings.TrimSpace(p.name.Value()),
		Subject:    p.subjects[p.subject],
		Difficulty: quiz.Difficulties()[p.difficulty],
		Length:     lengthChoices[p.length],
	}
	if p.st != nil {
		_ = p.st.SavePreferences(context.Background(), prefs)
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: quizscreen.New(p.repo, p.tut, prefs),
		}
	}
}

func (p *PickerScreen) View(width, height int) string {
	if !p.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading...")
	}

	rows := []string{
		p.renderRow(rowName, "Name", p.name.View()),
		p.renderRow(rowSubject, "Subject", p.subjects[p.subject].DisplayName()),
		p.renderRow(rowDifficulty, "Difficulty", quiz.Difficulties()[p.difficulty].DisplayName()),
		p.renderRow(rowLength, "Questions", fmt.Sprintf("%d", lengthChoices[p.length])),
	}

	start := components.NewButton("START", p.row == rowStart, nil)
	rows = append(rows, "", start.View())

	content := strings.Join(rows, "\n")
	card := theme.Card.Render(content)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (p *PickerScreen) renderRow(row int, label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	valueStyle := theme.Unselected
	prefix := "  "
	if p.row == row {
		prefix = "▸ "
		valueStyle = theme.Selected
	}
	if row != rowName && p.row == row {
		value = "◂ " + value + " ▸"
	}
	return prefix + labelStyle.Render(label) + valueStyle.Render(value)
}
