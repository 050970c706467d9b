package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
)

// resetCmd deletes the saved preferences so the app starts fresh.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if err := os.Remove(dbPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove %s: %w", dbPath, err)
		}

		// WAL sidecars, if present.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		fmt.Println("Preferences cleared.")
		return nil
	},
}
