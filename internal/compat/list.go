package compat

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// WriteTable prints the targets sorted by name, marking the default with '*'.
func WriteTable(w io.Writer, f *File) {
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().Bold(true)
	defaultStyle := r.NewStyle().Foreground(lipgloss.Color("205"))

	names := f.Names()
	width := len("TARGET")
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	row := func(mark, name, stellarium, qt, year, toolset string) string {
		return fmt.Sprintf("%s %-*s  %-10s  %-8s  %-6s  %s", mark, width, name, stellarium, qt, year, toolset)
	}

	fmt.Fprintln(w, headerStyle.Render(row(" ", "TARGET", "STELLARIUM", "QT", "MSVC", "TOOLSET")))
	for _, name := range names {
		t, _ := f.Lookup(name)
		line := row(" ", name, t.StellariumVersion.String(), t.QtVersion(), t.MSVCYear(), t.MSVCToolset())
		if name == f.Default.String() {
			line = defaultStyle.Render(row("*", name, t.StellariumVersion.String(), t.QtVersion(), t.MSVCYear(), t.MSVCToolset()))
		}
		fmt.Fprintln(w, line)
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "No targets defined.")
	}
}
