package engine

import (
	"path/filepath"
	"strings"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/config"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/util"
)

// SuppressionMarker prefixes inline suppressions: // depaudit:ignore <kind> reason="..."
const SuppressionMarker = "depaudit:ignore "

// Lines searched above and below a finding for a suppression comment.
const (
	suppressAbove = 5
	suppressBelow = 1
)

// applyIgnores filters findings based on config ignore rules and inline suppression markers
func applyIgnores(file, source string, findings []model.Finding, cfg config.Config) []model.Finding {
	var lines []string
	if strings.Contains(source, SuppressionMarker) {
		lines = util.SplitLines(source)
	}
	var out []model.Finding
	for _, f := range findings {
		if isIgnored(file, f, cfg) || hasInlineSuppression(lines, f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isIgnored(file string, f model.Finding, cfg config.Config) bool {
	for _, ig := range cfg.Ignore {
		if ig.Rule != "" && !strings.EqualFold(ig.Rule, string(f.Kind)) && !strings.EqualFold(ig.Rule, f.Name) {
			continue
		}
		if ig.Path != "" {
			if !strings.HasPrefix(filepath.ToSlash(file), filepath.ToSlash(ig.Path)) {
				continue
			}
		}
		return true
	}
	return false
}

// hasInlineSuppression looks around the finding location for a suppression comment
func hasInlineSuppression(lines []string, f model.Finding) bool {
	loc, ok := f.Primary()
	if !ok || len(lines) == 0 {
		return false
	}
	// window: 0-based indices
	from := max(0, loc.LineNumber-1-suppressAbove)
	to := min(len(lines)-1, loc.LineNumber-1+suppressBelow)
	needle := SuppressionMarker + string(f.Kind)
	for i := from; i <= to; i++ {
		if strings.Contains(lines[i], needle) {
			return true
		}
	}
	return false
}
