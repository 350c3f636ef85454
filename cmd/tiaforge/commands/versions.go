package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiaforge/internal/config"
)

// versions: list engineering tool versions installed under the install root
func versionsCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List installed engineering tool versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("install-root") {
				root = cfg.Portal.InstallRoot
			}
			versions := config.InstalledVersions(root)
			if len(versions) == 0 {
				fmt.Fprintf(stdout, "No installed versions found under %s\n", root)
				return nil
			}
			for _, v := range versions {
				marker := " "
				if v == cfg.Portal.Version {
					marker = "*"
				}
				fmt.Fprintf(stdout, "%s V%s  %s\n", marker, v, config.AssemblyPath(root, v))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "install-root", "", "install root to search")
	return cmd
}
