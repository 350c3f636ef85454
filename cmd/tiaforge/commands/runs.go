package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoJournal = errors.New("journal is disabled (set journal.path in the config)")

// runs: list journaled runs, newest first
func runsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List journaled runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := openJournal(cfg.Journal.Path)
			if err != nil {
				return err
			}
			if journal == nil {
				return errNoJournal
			}
			defer journal.Close()

			runs, err := journal.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printRuns(stdout, runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show (0 for all)")
	return cmd
}
