// Package audit is the entry point of the analysis core: it combines the
// signature scanner, feature extractor and scorer into a report, and exposes
// test-case and patch generation over the same source text.
//
// Every function here is pure and safe for concurrent use.
package audit

import (
	"strings"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/features"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/patch"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/scanner"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/scoring"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/testgen"
)

// ErrEmptySource is the report error for blank input.
const ErrEmptySource = "contract source is empty or unreadable"

// Audit scans source and scores it. Blank input yields a non-vulnerable
// report with Error set instead of a failure.
func Audit(source string) model.Report {
	if strings.TrimSpace(source) == "" {
		return Failed(ErrEmptySource)
	}
	findings := scanner.Scan(source)
	return model.Report{
		IsVulnerable:       scoring.IsVulnerable(findings),
		VulnerabilityScore: scoring.Score(findings),
		Findings:           findings,
		Features:           features.Extract(source),
	}
}

// Failed builds the report returned when no source could be analyzed.
func Failed(reason string) model.Report {
	return model.Report{Findings: []model.Finding{}, Error: reason}
}

// Rescore recomputes the verdict after findings were filtered.
func Rescore(r model.Report, findings []model.Finding) model.Report {
	if findings == nil {
		findings = []model.Finding{}
	}
	r.Findings = findings
	r.IsVulnerable = scoring.IsVulnerable(findings)
	r.VulnerabilityScore = scoring.Score(findings)
	return r
}

// GenerateTestCases returns an empty slice for blank input.
func GenerateTestCases(source string) []model.TestCase {
	if strings.TrimSpace(source) == "" {
		return []model.TestCase{}
	}
	return testgen.Generate(source)
}

func GeneratePatch(source string, f model.Finding) string {
	return patch.Generate(source, f).Text
}
