// Package picker is an interactive selector over the targets of a
// compatibility table.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"moontools/internal/compat"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user leaves the picker without choosing.
var ErrAborted = errors.New("no target selected")

type model struct {
	names       []string
	table       *compat.File
	defaultName string

	cursor int
	chosen string
	done   bool

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	detailStyle   lipgloss.Style
	helpStyle     lipgloss.Style
}

func initialModel(f *compat.File) model {
	m := model{
		names:       f.Names(),
		table:       f,
		defaultName: f.Default.String(),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		detailStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}

	// Start on the default target
	for i, name := range m.names {
		if name == m.defaultName {
			m.cursor = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.done = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		if len(m.names) > 0 {
			m.cursor = len(m.names) - 1
		}

	case "enter":
		if len(m.names) > 0 {
			m.chosen = m.names[m.cursor]
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.titleStyle.Render("Select a Stellarium target"))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString("No targets defined.\n")
	}
	for i, name := range m.names {
		label := name
		if name == m.defaultName {
			label += " (default)"
		}
		if i == m.cursor {
			b.WriteString(m.selectedStyle.Render("> " + label))
		} else {
			b.WriteString(m.normalStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if len(m.names) > 0 {
		t, _ := m.table.Lookup(m.names[m.cursor])
		b.WriteString("\n")
		b.WriteString(m.detailStyle.Render(fmt.Sprintf("Stellarium %s | Qt %s | MSVC %s (toolset %s)",
			t.StellariumVersion, t.QtVersion(), t.MSVCYear(), t.MSVCToolset())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑/↓ move • enter select • q quit"))
	return b.String()
}

// Run shows the picker and returns the chosen target name.
func Run(f *compat.File, opts ...tea.ProgramOption) (string, error) {
	p := tea.NewProgram(initialModel(f), opts...)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running target picker: %w", err)
	}

	m, ok := finalModel.(model)
	if !ok || m.chosen == "" {
		return "", ErrAborted
	}
	return m.chosen, nil
}
