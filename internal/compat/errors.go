package compat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigNotFound    = errors.New("compatibility file not found")
	ErrConfigParse       = errors.New("failed to parse YAML")
	ErrNoTargetSpecified = errors.New("no default target defined in compatibility file and no target requested")
	ErrUnknownTarget     = errors.New("unknown Stellarium target")
	ErrNoOutputSink      = errors.New("no environment export file")
)

// UnknownTargetError reports a requested target missing from the table.
type UnknownTargetError struct {
	Target    string
	Path      string
	Available []string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("requested Stellarium target '%s' not found in %s\navailable targets: %s",
		e.Target, e.Path, strings.Join(e.Available, ", "))
}

func (e *UnknownTargetError) Is(target error) bool {
	return target == ErrUnknownTarget
}
