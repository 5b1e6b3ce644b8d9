// Command stellarium-compat resolves the Stellarium build target for CI and
// exports its toolchain versions to the GitHub Actions environment file.
package main

import (
	"fmt"
	"os"

	"moontools/internal/compat"
	"moontools/internal/config"
	"moontools/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	compatFile string
	target     string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "stellarium-compat",
	Short: "Resolve the Stellarium build target and export it to $GITHUB_ENV",
	Long: `Resolve a named target from the compatibility table and append
STELLARIUM_TARGET, STELLARIUM_VERSION, QT_MAJOR, QT_VERSION, MSVC_YEAR and
MSVC_TOOLSET to the file named by GITHUB_ENV.

The target is taken from REQUESTED_TARGET when set, otherwise from the
table's default.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runResolve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the moontools config file")
	rootCmd.PersistentFlags().StringVarP(&compatFile, "file", "f", "", "compatibility table (default from config: ci/stellarium-compat.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.Flags().StringVarP(&target, "target", "t", "", "target to resolve, overriding the requested-target variable")

	rootCmd.AddCommand(listCmd, pickCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if compatFile != "" {
		cfg.Compat.File = compatFile
	}
	return logger.Setup(cfg.Log.File, cfg.Log.Level, verbose)
}

func resolveOptions() compat.Options {
	return compat.Options{
		File:      cfg.Compat.File,
		TargetEnv: cfg.Compat.TargetEnv,
		ExportEnv: cfg.Compat.ExportEnv,
		Lock:      cfg.Compat.LockEnabled(),
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	opts := resolveOptions()
	opts.Target = target
	_, err := compat.Run(opts, os.Getenv, cmd.OutOrStdout())
	return err
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("stellarium-compat failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}
