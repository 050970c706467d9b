package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/mchawi/sukulu/internal/ui/theme"
)

// OptionList renders the options of a multiple-choice question. It is a
// pure view: the quiz session owns cursor movement, masking, and
// feedback, and the screen feeds the current state in each frame.
type OptionList struct {
	Question string
	Options  []string

	// Cursor is the highlighted option, or -1 for none.
	Cursor int

	// Masked reports whether an option was removed by the 50/50 hint.
	Masked func(i int) bool

	// ShowFeedback switches from selection styling to answer styling.
	ShowFeedback bool
	CorrectIndex int
	ChosenIndex  int
}

// View renders the question and its options.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.ShowFeedback {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Masked != nil && o.Masked(i):
			s += theme.Masked.Render(line) + "\n"
		case o.ShowFeedback && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.ShowFeedback && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.ShowFeedback:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
