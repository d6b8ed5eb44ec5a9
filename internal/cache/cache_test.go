package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

func TestReports_StoreLoadEvict(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	c.Store(Key("a"), model.Report{VulnerabilityScore: 0.1})
	c.Store(Key("b"), model.Report{VulnerabilityScore: 0.2})
	got, ok := c.Load(Key("a"))
	require.True(t, ok)
	assert.Equal(t, 0.1, got.VulnerabilityScore)

	// "b" is least recently used now
	c.Store(Key("c"), model.Report{VulnerabilityScore: 0.3})
	_, ok = c.Load(Key("b"))
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestReports_NilIsNoop(t *testing.T) {
	c, err := New(0)
	require.NoError(t, err)
	assert.Nil(t, c)
	c.Store(Key("a"), model.Report{})
	_, ok := c.Load(Key("a"))
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestKey_DiffersByContent(t *testing.T) {
	assert.NotEqual(t, Key("contract A {}"), Key("contract B {}"))
	assert.Equal(t, Key("contract A {}"), Key("contract A {}"))
}
