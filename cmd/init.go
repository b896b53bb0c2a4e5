package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quash-sh/quash/core/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := afero.NewOsFs()
		if err := fsys.MkdirAll(cfgPath, 0755); err != nil {
			return err
		}
		if err := config.Initialize(fsys, cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s/%s\n", cfgPath, config.ConfigurationName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
