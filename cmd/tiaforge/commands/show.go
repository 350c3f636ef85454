package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiaforge/internal/codec"
)

// show <run-id>: print a journaled run; any unique id prefix works
func showCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print one journaled run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := openJournal(cfg.Journal.Path)
			if err != nil {
				return err
			}
			if journal == nil {
				return errNoJournal
			}
			defer journal.Close()

			id, err := journal.ResolveRunID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			report, err := journal.GetReport(cmd.Context(), id)
			if err != nil {
				return err
			}
			if report == nil {
				return fmt.Errorf("run %s vanished from the journal", id)
			}

			if format == "" || format == "text" {
				printReport(stdout, report)
				return nil
			}
			exporter, err := codec.ExporterFor(format)
			if err != nil {
				return err
			}
			return exporter.Export(report, stdout)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json, yaml or ansible")
	return cmd
}
