package main

import (
	"os"

	"moontools/internal/compat"
	"moontools/internal/logger"
	"moontools/internal/picker"

	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a target interactively and export it",
	Long: `Open a selector over the compatibility table. The chosen target is
resolved and exported exactly as if it had been requested through
REQUESTED_TARGET.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := compat.Load(cfg.Compat.File)
		if err != nil {
			return err
		}

		name, err := picker.Run(f)
		if err != nil {
			return err
		}
		logger.Info("Target picked interactively", "target", name)

		opts := resolveOptions()
		opts.Target = name
		_, err = compat.Run(opts, os.Getenv, cmd.OutOrStdout())
		return err
	},
}
