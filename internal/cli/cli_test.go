package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/config"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/patch"
)

const token = `pragma solidity ^0.8.0;

contract Token {
    address owner;
    uint256 supply;

    function mint(uint256 amount) public {
        require(tx.origin == owner);
        supply += amount;
    }
}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "depaudit", SilenceUsage: true, SilenceErrors: true}
	AddCommands(root)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeContract(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Token.sol")
	require.NoError(t, os.WriteFile(path, []byte(token), 0o644))
	return dir, path
}

func TestAuditJSON(t *testing.T) {
	_, path := writeContract(t)
	out, err := run(t, "audit", path, "--format", "json")
	require.NoError(t, err)

	var rep model.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.IsVulnerable)
	assert.InDelta(t, 0.4, rep.VulnerabilityScore, 1e-9)
	require.Len(t, rep.Findings, 2)
	assert.Equal(t, model.KindTxOrigin, rep.Findings[0].Kind)
	assert.Equal(t, 8, rep.Findings[0].Locations[0].LineNumber)
	assert.Equal(t, model.KindIntegerOverflow, rep.Findings[1].Kind)
	assert.Equal(t, 1, rep.Features.FunctionCount)
	// the mint parameter is counted alongside the two state variables
	assert.Equal(t, 3, rep.Features.StateVarCount)
}

func TestAuditFormats(t *testing.T) {
	dir, _ := writeContract(t)

	out, err := run(t, "audit", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Files: 1, findings: 2")

	out, err = run(t, "audit", dir, "--format", "sarif")
	require.NoError(t, err)
	assert.Contains(t, out, `"ruleId": "tx_origin"`)

	out, err = run(t, "audit", dir, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# Smart Contract Audit")

	_, err = run(t, "audit", dir, "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestAuditFailOn(t *testing.T) {
	dir, _ := writeContract(t)
	_, err := run(t, "audit", dir, "--fail-on", "high")
	assert.ErrorIs(t, err, ErrThreshold)

	_, err = run(t, "audit", dir, "--fail-on", "critical")
	assert.NoError(t, err)
}

func TestAuditBaselineRoundTrip(t *testing.T) {
	dir, _ := writeContract(t)
	base := filepath.Join(t.TempDir(), "baseline.json")
	_, err := run(t, "audit", dir, "--write-baseline", base)
	require.NoError(t, err)
	require.FileExists(t, base)

	out, err := run(t, "audit", dir, "--baseline", base, "--fail-on", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "findings: 0")
}

func TestAuditHonoursConfig(t *testing.T) {
	dir, _ := writeContract(t)
	cfg := "disabledRules: [tx_origin]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0o644))

	out, err := run(t, "audit", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "findings: 1")
	assert.NotContains(t, out, "tx_origin")
}

func TestAuditOutFile(t *testing.T) {
	dir, _ := writeContract(t)
	dest := filepath.Join(t.TempDir(), "report.json")
	out, err := run(t, "audit", dir, "--format", "json", "--out", dest)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"vulnerability_score"`)
}

func TestAuditNoSource(t *testing.T) {
	_, err := run(t, "audit", t.TempDir())
	assert.Error(t, err)
}

func TestTestCommand(t *testing.T) {
	_, path := writeContract(t)
	out, err := run(t, "test", path)
	require.NoError(t, err)

	var cases []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cases))
	require.Len(t, cases, 2)
	assert.Equal(t, "mint", cases[0]["function"])
	assert.Equal(t, false, cases[0]["edge_case"])
	assert.Equal(t, true, cases[1]["edge_case"])
}

func TestPatchCommand(t *testing.T) {
	_, path := writeContract(t)

	out, err := run(t, "patch", path, "--line", "8", "--kind", "tx_origin")
	require.NoError(t, err)
	assert.Contains(t, out, "msg.sender == owner")

	out, err = run(t, "patch", path, "--kind", "Integer Overflow", "--line", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "SafeMath")

	out, err = run(t, "patch", path, "--kind", "reentrancy")
	require.NoError(t, err)
	assert.Equal(t, patch.InsufficientInfo, strings.TrimSpace(out))

	_, err = run(t, "patch", path, "--kind", "nope", "--line", "1")
	assert.ErrorContains(t, err, "unknown kind")

	_, err = run(t, "patch", path)
	assert.Error(t, err)
}

func TestPatchFromFindingFile(t *testing.T) {
	_, path := writeContract(t)
	f := model.NewFinding(model.KindTxOrigin, "tx.origin Authentication", model.SeverityHigh, 0.85,
		model.Location{LineNumber: 8, LineText: "require(tx.origin == owner);"})
	data, err := json.Marshal(f)
	require.NoError(t, err)
	ff := filepath.Join(t.TempDir(), "finding.json")
	require.NoError(t, os.WriteFile(ff, data, 0o644))

	out, err := run(t, "patch", path, "--finding", ff)
	require.NoError(t, err)
	assert.Contains(t, out, "msg.sender")
}

func TestInitAndRules(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, config.FileName)
	cfg, used, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName), used)
	assert.Equal(t, config.Default(), cfg)

	out, err = run(t, "rules", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "reentrancy\tcritical\tReentrancy Vulnerability", lines[0])
}
