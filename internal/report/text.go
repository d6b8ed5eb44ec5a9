package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

// ToJSON renders a single report when one file was audited, the full result otherwise.
func ToJSON(result *model.AuditResult) ([]byte, error) {
	if len(result.Files) == 1 {
		return json.MarshalIndent(result.Files[0].Report, "", "  ")
	}
	return json.MarshalIndent(result, "", "  ")
}

// WriteTable prints the compact terminal summary.
func WriteTable(w io.Writer, result *model.AuditResult) {
	fmt.Fprintf(w, "Files: %d, findings: %d (elapsed %s)\n", len(result.Files), len(result.AllFindings()), result.Elapsed)
	for _, fr := range result.Files {
		if fr.Report.Error != "" {
			fmt.Fprintf(w, "%s: error: %s\n", fr.File, fr.Report.Error)
			continue
		}
		fmt.Fprintf(w, "%s: score=%.2f vulnerable=%t complexity=%s", fr.File, fr.Report.VulnerabilityScore, fr.Report.IsVulnerable, fr.Report.Features.Complexity)
		if fr.Classifier != nil {
			fmt.Fprintf(w, " classifier=%.2f adjusted=%.2f", fr.Classifier.Probability, fr.AdjustedScore)
		}
		fmt.Fprintln(w)
		for _, f := range fr.Report.Findings {
			loc, _ := f.Primary()
			fmt.Fprintf(w, "- %s [%s] %s:%d %s (conf=%.2f)\n", f.Kind, f.Severity, fr.File, loc.LineNumber, loc.LineText, f.Confidence)
		}
	}
}

// ToMarkdown renders a human-readable audit report.
func ToMarkdown(result *model.AuditResult) string {
	var b strings.Builder
	b.WriteString("# Smart Contract Audit\n\n")
	for _, fr := range result.Files {
		fmt.Fprintf(&b, "## %s\n\n", fr.File)
		if fr.Report.Error != "" {
			fmt.Fprintf(&b, "Audit failed: %s\n\n", fr.Report.Error)
			continue
		}
		ft := fr.Report.Features
		fmt.Fprintf(&b, "- Vulnerability score: %.2f\n", fr.Report.VulnerabilityScore)
		if fr.Classifier != nil {
			fmt.Fprintf(&b, "- Classifier probability: %.2f (adjusted score %.2f)\n", fr.Classifier.Probability, fr.AdjustedScore)
		}
		fmt.Fprintf(&b, "- Complexity: %s (%d functions, %d state variables, %d modifiers, %d events)\n",
			ft.Complexity, ft.FunctionCount, ft.StateVarCount, ft.ModifierCount, ft.EventCount)
		fmt.Fprintf(&b, "- Estimated graph: %d nodes, %d edges, depth %d\n\n", ft.NodeCount, ft.EdgeCount, ft.CallDepth)
		if len(fr.Report.Findings) == 0 {
			b.WriteString("No findings.\n\n")
			continue
		}
		b.WriteString("| Severity | Finding | Line | Code |\n|---|---|---|---|\n")
		for _, f := range fr.Report.Findings {
			loc, _ := f.Primary()
			fmt.Fprintf(&b, "| %s | %s | %d | `%s` |\n", f.Severity, f.Name, loc.LineNumber, strings.ReplaceAll(loc.LineText, "|", "\\|"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
