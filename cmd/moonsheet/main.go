// Command moonsheet prints the parameters, formulas and sample values of the
// Relaxed Moon Avoidance workbook.
package main

import (
	"fmt"
	"os"

	"moontools/internal/config"
	"moontools/internal/excel"
	"moontools/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configPath   string
	workbookPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "moonsheet",
	Short:         "Dump the Moon Avoidance workbook's parameters and sample values",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDump,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the moontools config file")
	rootCmd.Flags().StringVarP(&workbookPath, "workbook", "w", "", "workbook to read (default from config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := logger.Setup(cfg.Log.File, cfg.Log.Level, verbose); err != nil {
		return err
	}

	path := cfg.Sheet.Workbook
	if workbookPath != "" {
		path = workbookPath
	}

	logger.Info("Dumping workbook", "path", path)
	wb, err := excel.OpenWorkbook(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	return excel.Dump(cmd.OutOrStdout(), wb, excel.DefaultLayout())
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("moonsheet failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}
