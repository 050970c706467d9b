package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mchawi/sukulu/internal/llm"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/spf13/cobra"
)

// askCmd sends one question to the tutor and streams the answer to
// stdout. Handy for a quick check without opening the TUI.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return fmt.Errorf("question is empty")
		}

		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no API key found; set SUKULU_GEMINI_API_KEY, SUKULU_OPENAI_API_KEY, or SUKULU_ANTHROPIC_API_KEY")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}
		tut := tutor.NewService(provider)

		out := cmd.OutOrStdout()
		transcript := []llm.Message{{Role: llm.RoleUser, Content: question}}
		_, err = tut.Chat(ctx, transcript, func(delta string) {
			fmt.Fprint(out, delta)
		})
		fmt.Fprintln(out)
		return err
	},
}
