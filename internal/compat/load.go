package compat

import (
	"fmt"
	"os"
	"strings"

	"moontools/internal/logger"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the compatibility table at path.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %v", ErrConfigParse, path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %v", ErrConfigParse, path, err)
	}
	f.path = path

	logger.Debug("Loaded compatibility file", "path", path, "targets", len(f.Targets))
	return f, nil
}

// Parse decodes a compatibility table. An empty document yields an empty table.
func Parse(data []byte) (*File, error) {
	var f File
	if len(strings.TrimSpace(string(data))) == 0 {
		return &f, nil
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Select resolves the target to build. A non-blank requested name wins over
// the table's default.
func (f *File) Select(requested string) (string, Target, error) {
	name := strings.TrimSpace(requested)
	if name == "" {
		name = f.Default.String()
	}
	if name == "" {
		return "", Target{}, ErrNoTargetSpecified
	}

	t, ok := f.Lookup(name)
	if !ok {
		return "", Target{}, &UnknownTargetError{
			Target:    name,
			Path:      f.path,
			Available: f.Names(),
		}
	}
	return name, t, nil
}
