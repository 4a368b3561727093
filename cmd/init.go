package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multiselect/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample config file",
	Long: `Writes the built-in option list and UI settings as TOML, ready to edit.
Without a path the file goes where the demo looks for it by default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolvePath(cfgFile)
		if len(args) == 1 {
			path = args[0]
		}
		return writeSampleConfig(cmd, path)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
}

func writeSampleConfig(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
