package compat

import (
	"fmt"
	"io"
	"strings"

	"moontools/internal/logger"
)

// Options controls a resolve-and-export run.
type Options struct {
	// File is the compatibility table path.
	File string
	// TargetEnv names the variable holding an optional target override.
	TargetEnv string
	// ExportEnv names the variable holding the export file path.
	ExportEnv string
	// Target, when set, is used instead of the TargetEnv variable.
	Target string
	Lock   bool
}

// Result describes what a successful run exported.
type Result struct {
	Name    string
	Target  Target
	EnvFile string
	Exports []Export
}

// Run loads the table, selects a target, appends its exports to the file
// named by ExportEnv and prints the summary line to stdout.
func Run(opts Options, getenv func(string) string, stdout io.Writer) (*Result, error) {
	f, err := Load(opts.File)
	if err != nil {
		return nil, err
	}

	requested := opts.Target
	if strings.TrimSpace(requested) == "" {
		requested = getenv(opts.TargetEnv)
	}

	name, target, err := f.Select(requested)
	if err != nil {
		return nil, err
	}
	logger.Info("Resolved Stellarium target", "target", name, "requested", strings.TrimSpace(requested) != "")

	envFile := getenv(opts.ExportEnv)
	if envFile == "" {
		return nil, fmt.Errorf("%w: %s is not set; cannot export environment variables", ErrNoOutputSink, opts.ExportEnv)
	}

	exports := target.Exports(name)
	if err := AppendEnv(envFile, exports, opts.Lock); err != nil {
		return nil, err
	}
	logger.Info("Exported target variables", "file", envFile, "count", len(exports))

	fmt.Fprintln(stdout, target.Summary(name))

	return &Result{
		Name:    name,
		Target:  target,
		EnvFile: envFile,
		Exports: exports,
	}, nil
}
