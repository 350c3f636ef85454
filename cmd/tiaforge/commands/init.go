package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tiaforge/internal/config"
)

// init: write a default config file
func initCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			c := config.DefaultConfig()
			c.Project.Path = "."
			c.Project.Name = "Project1"
			c.Input = "devices.xlsx"
			if err := c.Save(path); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("Config written")
			fmt.Fprintln(stdout, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "where to write the config (default: per-user config dir)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
