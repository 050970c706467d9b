package cmd

import (
	"fmt"

	"github.com/mchawi/sukulu/internal/app"
	"github.com/mchawi/sukulu/internal/banks"
	"github.com/mchawi/sukulu/internal/quiz"
	quizscreen "github.com/mchawi/sukulu/internal/screens/quiz"
	"github.com/mchawi/sukulu/internal/store"
	"github.com/spf13/cobra"
)

var (
	playSubject    string
	playDifficulty string
	playLength     int
	playPrint      bool
	playAnswers    bool
)

// playCmd starts a quiz with the setup given on the command line,
// skipping the picker. With --print it writes a practice sheet to
// stdout instead of opening the TUI.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := quiz.ParseSubject(playSubject)
		if err != nil {
			return err
		}
		difficulty, err := quiz.ParseDifficulty(playDifficulty)
		if err != nil {
			return err
		}
		if playLength < 1 || playLength > 50 {
			return fmt.Errorf("length must be between 1 and 50, got %d", playLength)
		}

		if playPrint {
			return printSheet(cmd, subject, difficulty, playLength)
		}

		opts, cleanup, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		prefs := store.Preferences{
			PlayerName: opts.PlayerName,
			Subject:    subject,
			Difficulty: difficulty,
			Length:     playLength,
		}
		opts.InitialScreen = quizscreen.New(opts.Repository, opts.Tutor, prefs)

		return app.Run(opts)
	},
}

// printSheet writes a numbered question sheet, for studying on paper.
func printSheet(cmd *cobra.Command, subject quiz.Subject, difficulty quiz.Difficulty, length int) error {
	repo, _, err := banks.NewRepository()
	if err != nil {
		return fmt.Errorf("load question banks: %w", err)
	}

	questions := repo.Fetch(subject, length, difficulty)
	if len(questions) == 0 {
		return fmt.Errorf("no questions available for %s", subject.DisplayName())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s — %s (%d questions)\n\n", subject.DisplayName(), difficulty.DisplayName(), len(questions))
	for i, q := range questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "   %c) %s\n", 'A'+j, opt)
		}
		fmt.Fprintln(out)
	}

	if playAnswers {
		fmt.Fprintln(out, "Answers:")
		for i, q := range questions {
			fmt.Fprintf(out, "  %d. %c) %s\n", i+1, 'A'+q.CorrectIndex, q.Options[q.CorrectIndex])
		}
	}
	return nil
}

func init() {
	playCmd.Flags().StringVarP(&playSubject, "subject", "s", "random", "Subject: history, biology, maths, agriculture, random")
	playCmd.Flags().StringVarP(&playDifficulty, "difficulty", "d", "medium", "Difficulty: easy, medium, hard")
	playCmd.Flags().IntVarP(&playLength, "length", "n", 10, "Number of questions (1-50)")
	playCmd.Flags().BoolVar(&playPrint, "print", false, "Print a practice sheet instead of opening the TUI")
	playCmd.Flags().BoolVarP(&playAnswers, "answers", "a", false, "With --print, include the answer key")
}
