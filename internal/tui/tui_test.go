package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/audit"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

func TestFindingListNavigation(t *testing.T) {
	src := "contract X {\n    function f() public {\n        total += 1;\n        selfdestruct(owner);\n    }\n}"
	m := newFindingList(&model.AuditResult{Files: []model.FileResult{{File: "X.sol", Report: audit.Audit(src)}}})
	require.Len(t, m.findings, 2)
	assert.Contains(t, m.View(), "> integer_overflow [high] X.sol:3")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	m = next.(findingList)
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.View(), "> unsecured_selfdestruct [critical] X.sol:4")
	assert.Contains(t, m.View(), "Unsecured Self-Destruct")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, next.(findingList).cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, next.(findingList).cursor)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestFindingListEmpty(t *testing.T) {
	m := newFindingList(&model.AuditResult{})
	assert.Contains(t, m.View(), "Findings (0)")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, next.(findingList).cursor)
}
