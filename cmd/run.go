package cmd

import (
	"fmt"
	"os"

	"github.com/mchawi/sukulu/internal/app"
	"github.com/mchawi/sukulu/internal/banks"
	"github.com/mchawi/sukulu/internal/llm"
	"github.com/mchawi/sukulu/internal/store"
	"github.com/mchawi/sukulu/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	opts, cleanup, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(opts)
}

// buildOptions assembles the app's dependencies. The returned cleanup
// closes the store and must be called.
func buildOptions(cmd *cobra.Command) (app.Options, func(), error) {
	ctx := cmd.Context()
	noop := func() {}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return app.Options{}, noop, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return app.Options{}, noop, fmt.Errorf("open store: %w", err)
	}
	cleanup := func() { _ = st.Close() }

	repo, problems, err := banks.NewRepository()
	if err != nil {
		cleanup()
		return app.Options{}, noop, fmt.Errorf("load question banks: %w", err)
	}
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, "bank warning:", p)
	}

	prefs, err := st.Preferences(ctx)
	if err != nil {
		cleanup()
		return app.Options{}, noop, fmt.Errorf("load preferences: %w", err)
	}

	opts := app.Options{
		Repository: repo,
		Store:      st,
		PlayerName: prefs.PlayerName,
	}

	// The tutor is optional; the quiz works fine without an API key.
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tutor unavailable:", err)
		} else {
			opts.Tutor = tutor.NewService(provider)
		}
	}

	return opts, cleanup, nil
}
