package engine

import (
	"strings"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/config"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/rules"
)

// filterBySeverity removes findings below the configured severity threshold
func filterBySeverity(findings []model.Finding, cfg config.Config) []model.Finding {
	if cfg.SeverityThreshold == "" {
		return findings
	}
	threshold := model.ParseSeverity(cfg.SeverityThreshold)
	var out []model.Finding
	for _, f := range findings {
		if model.SeverityGTE(f.Severity, threshold) {
			out = append(out, f)
		}
	}
	return out
}

// filterByRules drops findings whose kind is listed in cfg.DisabledRules.
// Entries may be kinds or display names.
func filterByRules(findings []model.Finding, cfg config.Config) []model.Finding {
	if len(cfg.DisabledRules) == 0 {
		return findings
	}
	disabled := map[model.Kind]struct{}{}
	for _, id := range cfg.DisabledRules {
		if k, ok := rules.ParseKind(strings.TrimSpace(id)); ok {
			disabled[k] = struct{}{}
		}
	}
	var out []model.Finding
	for _, f := range findings {
		if _, ok := disabled[f.Kind]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}
