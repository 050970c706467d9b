// Package chat is the free-form tutor conversation screen. Replies
// stream in token by token.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mchawi/sukulu/internal/llm"
	"github.com/mchawi/sukulu/internal/screen"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/mchawi/sukulu/internal/ui/components"
	"github.com/mchawi/sukulu/internal/ui/layout"
	"github.com/mchawi/sukulu/internal/ui/theme"
)

// streamDeltaMsg carries one streamed chunk of the tutor's reply.
type streamDeltaMsg struct {
	Delta string
}

// streamDoneMsg marks the end of a streamed reply.
type streamDoneMsg struct {
	Reply string
	Err   error
}

// ChatScreen hosts the tutor conversation.
type ChatScreen struct {
	tut   *tutor.Service
	input components.TextInput

	transcript []llm.Message
	partial    string
	streaming  bool
	errMsg     string

	// Stream plumbing: the worker goroutine feeds deltas, then closes
	// the channel and reports the result.
	deltas chan string
	result chan streamDoneMsg
	cancel context.CancelFunc
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.EscHandler = (*ChatScreen)(nil)

// HandlesEsc claims Esc while a reply is streaming: leaving mid-stream
// would orphan the worker, so Esc stops the reply first.
func (c *ChatScreen) HandlesEsc() bool {
	return c.streaming
}

// New creates the chat screen.
func New(tut *tutor.Service) *ChatScreen {
	return &ChatScreen{
		tut:   tut,
		input: components.NewTextInput("Ask about your schoolwork...", false, 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Tutor"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.streaming {
		return []layout.KeyHint{
			{Key: "Ctrl+X", Description: "Stop reply"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streamDeltaMsg:
		c.partial += msg.Delta
		return c, c.awaitStream()

	case streamDoneMsg:
		c.streaming = false
		c.partial = ""
		c.cancel = nil
		if msg.Err != nil {
			if msg.Reply != "" {
				// Keep whatever arrived before the stream broke.
				c.transcript = append(c.transcript, llm.Message{Role: llm.RoleAssistant, Content: msg.Reply})
			}
			c.errMsg = "The tutor is not answering right now. Try again."
			return c, nil
		}
		c.transcript = append(c.transcript, llm.Message{Role: llm.RoleAssistant, Content: msg.Reply})
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if !c.streaming {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if c.streaming {
		if (key == "ctrl+x" || key == "esc") && c.cancel != nil {
			c.cancel()
		}
		return c, nil
	}

	if key == "enter" {
		question := strings.TrimSpace(c.input.Value())
		if question == "" {
			return c, nil
		}
		c.errMsg = ""
		c.transcript = append(c.transcript, llm.Message{Role: llm.RoleUser, Content: question})
		c.input = components.NewTextInput("Ask about your schoolwork...", false, 200)
		return c, tea.Batch(c.startStream(), c.input.Init())
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// startStream launches the tutor request in a worker goroutine and
// begins pumping its deltas into the update loop.
func (c *ChatScreen) startStream() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.streaming = true
	c.partial = ""
	c.deltas = make(chan string, 16)
	c.result = make(chan streamDoneMsg, 1)

	transcript := make([]llm.Message, len(c.transcript))
	copy(transcript, c.transcript)
	deltas, result := c.deltas, c.result

	go func() {
		defer cancel()
		reply, err := c.tut.Chat(ctx, transcript, func(delta string) {
			select {
			case deltas <- delta:
			case <-ctx.Done():
			}
		})
		close(deltas)
		result <- streamDoneMsg{Reply: reply, Err: err}
	}()

	return c.awaitStream()
}

// awaitStream waits for the next delta, or the final result once the
// delta channel closes.
func (c *ChatScreen) awaitStream() tea.Cmd {
	deltas, result := c.deltas, c.result
	return func() tea.Msg {
		for delta := range deltas {
			return streamDeltaMsg{Delta: delta}
		}
		return <-result
	}
}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	wrap := lipgloss.NewStyle().Width(min(width-6, 76))
	userStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	if len(c.transcript) == 0 && !c.streaming {
		b.WriteString(theme.Hint.Render("  Ask anything about your subjects: history, biology, maths, agriculture..."))
		b.WriteString("\n\n")
	}

	for _, m := range c.transcript {
		if m.Role == llm.RoleUser {
			b.WriteString(userStyle.Render("  You: "))
		} else {
			b.WriteString(tutorStyle.Render("  Tutor: "))
		}
		b.WriteString(wrap.Render(m.Content))
		b.WriteString("\n\n")
	}

	if c.streaming {
		b.WriteString(tutorStyle.Render("  Tutor: "))
		if c.partial == "" {
			b.WriteString(theme.Hint.Render("thinking..."))
		} else {
			b.WriteString(wrap.Render(c.partial))
		}
		b.WriteString("\n\n")
	}

	if c.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + c.errMsg))
		b.WriteString("\n\n")
	}

	conversation := b.String()

	// Pin the latest lines above the input when the log outgrows the
	// screen.
	lines := strings.Split(strings.TrimRight(conversation, "\n"), "\n")
	visible := height - 3
	if visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	inputLine := "  > " + c.input.View()
	if c.streaming {
		inputLine = theme.Hint.Render("  ...")
	}

	return strings.Join(lines, "\n") + "\n\n" + inputLine
}
