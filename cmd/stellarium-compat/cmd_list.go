package main

import (
	"moontools/internal/compat"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the targets in the compatibility table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := compat.Load(cfg.Compat.File)
		if err != nil {
			return err
		}
		compat.WriteTable(cmd.OutOrStdout(), f)
		return nil
	},
}
