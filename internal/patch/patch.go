// Package patch renders remediation guidance for a single finding.
// The text is advisory; nothing here edits or re-parses the contract.
package patch

import (
	"regexp"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/rules"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/util"
)

// DefaultFunctionName is used by the reentrancy template when no enclosing
// function declaration precedes the finding.
const DefaultFunctionName = "withdraw"

// InsufficientInfo is returned when the finding carries no location.
const InsufficientInfo = "// DEP Security Patch: cannot generate a patch, the finding carries no location information"

var reFunctionName = regexp.MustCompile(`function\s+(\w+)`)

// Generate produces patch text for f against source.
func Generate(source string, f model.Finding) model.Patch {
	kind := resolveKind(f)
	loc, ok := f.Primary()
	if !ok {
		return model.Patch{Kind: kind, Text: InsufficientInfo}
	}
	lines := util.SplitLines(source)
	if text, ok := specific(kind, lines, loc.LineNumber); ok {
		return model.Patch{Kind: kind, Text: text}
	}
	return model.Patch{Kind: kind, Text: generic(f.Name, loc)}
}

// resolveKind trusts the finding's kind and falls back to its display name,
// which is all a deserialized finding may carry.
func resolveKind(f model.Finding) model.Kind {
	if _, ok := rules.Lookup(f.Kind); ok {
		return f.Kind
	}
	if k, ok := rules.KindByName(f.Name); ok {
		return k
	}
	return ""
}

// specific renders the kind's template. It reports false when the kind is
// unknown or line is not a valid 1-based index into lines.
func specific(kind model.Kind, lines []string, line int) (string, bool) {
	original, ok := util.LineAt(lines, line)
	if !ok {
		return "", false
	}
	indent := util.Indentation(original)
	switch kind {
	case model.KindReentrancy:
		return reentrancy(enclosingFunction(lines, line), indent), true
	case model.KindIntegerOverflow:
		return integerOverflow(), true
	case model.KindTxOrigin:
		return txOrigin(original), true
	case model.KindUncheckedReturn:
		return uncheckedReturn(original, indent), true
	case model.KindSelfDestruct:
		return selfDestruct(original, indent), true
	default:
		return "", false
	}
}

// enclosingFunction walks backward from the 1-based line (inclusive) to the
// nearest function declaration.
func enclosingFunction(lines []string, line int) string {
	for i := line - 1; i >= 0; i-- {
		if m := reFunctionName.FindStringSubmatch(lines[i]); m != nil {
			return m[1]
		}
	}
	return DefaultFunctionName
}
