package scoring

import "github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"

const (
	defaultWeight = 0.10
	maxScore      = 1.0
)

var weights = map[model.Severity]float64{
	model.SeverityCritical: 0.30,
	model.SeverityHigh:     0.20,
	model.SeverityMedium:   0.10,
	model.SeverityLow:      0.05,
	model.SeverityInfo:     0.01,
}

// Weight returns the score contribution of one finding of the given severity.
func Weight(sev model.Severity) float64 {
	if w, ok := weights[sev]; ok {
		return w
	}
	return defaultWeight
}

// Score sums severity weights and clamps the total to 1.0. There is no
// diminishing-returns curve: once saturated, more findings change nothing.
func Score(findings []model.Finding) float64 {
	total := 0.0
	for _, f := range findings {
		total += Weight(f.Severity)
	}
	if total > maxScore {
		return maxScore
	}
	return total
}

func IsVulnerable(findings []model.Finding) bool { return len(findings) > 0 }

// Clamp bounds v to [0,1].
func Clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > maxScore:
		return maxScore
	default:
		return v
	}
}
