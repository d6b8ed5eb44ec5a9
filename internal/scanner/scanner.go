// Package scanner matches contract source line by line against the rule table.
package scanner

import (
	"strings"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/rules"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/util"
)

const (
	// Confidence assigned to every signature match.
	Confidence = 0.85
	// ContextRadius is the number of lines kept on each side of a match.
	ContextRadius = 2
)

// Scan returns one finding per (line, rule) match, ordered by line and then by
// rule table order. Mitigations written on another line are not seen.
func Scan(source string) []model.Finding {
	findings := []model.Finding{}
	lines := util.SplitLines(source)
	table := rules.All()
	for i, line := range lines {
		for _, r := range table {
			if !r.Match(line) {
				continue
			}
			text := strings.TrimSpace(line)
			loc := model.Location{
				LineNumber: i + 1,
				LineText:   text,
				Context:    util.ContextWindow(lines, i, ContextRadius),
			}
			f := model.NewFinding(r.Kind, r.Name, r.Severity, Confidence, loc)
			f.Fingerprint = util.Fingerprint(string(r.Kind), i+1, text)
			findings = append(findings, f)
		}
	}
	return findings
}
