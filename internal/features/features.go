// Package features derives coarse structural metrics from contract source.
package features

import (
	"regexp"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

var (
	reFunction = regexp.MustCompile(`function\s+\w+\s*\(`)
	reStateVar = regexp.MustCompile(`\b(?:(?:uint\d*|int\d*|bool|address|string|bytes\d*)\s+\w+|mapping\s*\(.*?\)\s+\w+)`)
	reModifier = regexp.MustCompile(`modifier\s+\w+\s*\(`)
	reEvent    = regexp.MustCompile(`event\s+\w+\s*\(`)
)

// Complexity thresholds, checked high first.
const (
	highFunctions   = 10
	highStateVars   = 15
	mediumFunctions = 5
	mediumStateVars = 10
)

// Extract counts declarations independently over the whole text. Edges and
// depth are estimates derived from the function count, not a call graph.
func Extract(source string) model.Features {
	fn := len(reFunction.FindAllStringIndex(source, -1))
	vars := len(reStateVar.FindAllStringIndex(source, -1))
	mods := len(reModifier.FindAllStringIndex(source, -1))
	events := len(reEvent.FindAllStringIndex(source, -1))

	return model.Features{
		NodeCount:     fn + vars + mods + events,
		EdgeCount:     fn * 2,
		CallDepth:     3 + fn/3,
		Complexity:    Classify(fn, vars),
		FunctionCount: fn,
		StateVarCount: vars,
		ModifierCount: mods,
		EventCount:    events,
	}
}

func Classify(functions, stateVars int) model.Complexity {
	switch {
	case functions > highFunctions || stateVars > highStateVars:
		return model.ComplexityHigh
	case functions > mediumFunctions || stateVars > mediumStateVars:
		return model.ComplexityMedium
	default:
		return model.ComplexityLow
	}
}
