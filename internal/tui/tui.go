package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

type findingList struct {
	findings []model.FileFinding
	cursor   int
}

func newFindingList(result *model.AuditResult) findingList {
	return findingList{findings: result.AllFindings()}
}

func (m findingList) Init() tea.Cmd { return nil }

func (m findingList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.findings)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m findingList) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Findings (%d)\n\n", len(m.findings))
	for i, f := range m.findings {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		loc, _ := f.Primary()
		fmt.Fprintf(&b, "%s%s [%s] %s:%d (conf=%.2f)\n", marker, f.Kind, f.Severity, f.File, loc.LineNumber, f.Confidence)
	}
	if len(m.findings) > 0 {
		sel := m.findings[m.cursor]
		if loc, ok := sel.Primary(); ok {
			fmt.Fprintf(&b, "\n%s\n%s\n", sel.Name, loc.Context)
		}
	}
	b.WriteString("\nup/down to move, q to quit\n")
	return b.String()
}

// Run launches the interactive finding list.
func Run(result *model.AuditResult) error {
	p := tea.NewProgram(newFindingList(result))
	_, err := p.Run()
	return err
}
