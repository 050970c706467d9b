package cmd

import (
	"fmt"

	"github.com/mchawi/sukulu/internal/banks"
	"github.com/mchawi/sukulu/internal/quiz"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Inspect the embedded question banks",
}

var banksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects and pool sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		pools, _, err := banks.LoadAll()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, subject := range quiz.Subjects() {
			if subject == quiz.SubjectMaths {
				fmt.Fprintf(out, "%-16s generated\n", subject.DisplayName())
				continue
			}
			fmt.Fprintf(out, "%-16s %d questions\n", subject.DisplayName(), len(pools[subject]))
		}
		return nil
	},
}

// banksVetCmd validates every pool entry, for use when editing the
// bank JSON files.
var banksVetCmd = &cobra.Command{
	Use:   "vet",
	Short: "Validate every bank entry against the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, problems, err := banks.LoadAll()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintln(out, "All banks valid.")
			return nil
		}

		fmt.Fprintf(out, "%d problem(s) found:\n", len(problems))
		for _, p := range problems {
			fmt.Fprintln(out, " -", p)
		}
		return fmt.Errorf("bank validation failed")
	},
}

func init() {
	banksCmd.AddCommand(banksListCmd)
	banksCmd.AddCommand(banksVetCmd)
}
