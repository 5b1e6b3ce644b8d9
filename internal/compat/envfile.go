package compat

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

// Export is one KEY=value pair for the environment export file.
type Export struct {
	Key   string
	Value string
}

// line renders the pair in the export file format. Multi-line values use
// the KEY<<DELIMITER form so they cannot inject extra variables.
func (e Export) line() string {
	if !strings.ContainsAny(e.Value, "\r\n") {
		return e.Key + "=" + e.Value + "\n"
	}
	delim := "MOONTOOLS_EOF"
	for strings.Contains(e.Value, delim) {
		delim += "_"
	}
	return e.Key + "<<" + delim + "\n" + e.Value + "\n" + delim + "\n"
}

// AppendEnv appends exports to the file at path, creating it if needed.
// Existing content is never truncated. With lock set, the batch is written
// under an advisory lock on path+".lock".
func AppendEnv(path string, exports []Export, lock bool) error {
	if lock {
		fileLock := flock.New(path + ".lock")
		if err := fileLock.Lock(); err != nil {
			return fmt.Errorf("failed to lock %s: %w", path, err)
		}
		defer func() { _ = fileLock.Unlock() }()
	}

	var b strings.Builder
	for _, e := range exports {
		b.WriteString(e.line())
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open environment file %s: %w", path, err)
	}
	if _, err := file.WriteString(b.String()); err != nil {
		file.Close()
		return fmt.Errorf("failed to write environment file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close environment file %s: %w", path, err)
	}
	return nil
}
