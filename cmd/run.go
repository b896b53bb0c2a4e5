package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quash-sh/quash/core/shell"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive shell session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

func runShell() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sh, err := shell.New(cfg)
	if err != nil {
		return err
	}
	defer sh.Close()

	sh.Run()
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
