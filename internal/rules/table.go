package rules

import (
	"github.com/dlclark/regexp2"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
)

// Rule is a single vulnerability signature. The pattern is unexported so a Rule
// obtained from the table cannot be altered by callers.
type Rule struct {
	Kind     model.Kind
	Name     string
	Severity model.Severity
	pattern  *regexp2.Regexp
}

// Pattern returns the source text of the rule's expression.
func (r Rule) Pattern() string { return r.pattern.String() }

// Match reports whether the rule fires on a single line of source.
func (r Rule) Match(line string) bool {
	ok, err := r.pattern.MatchString(line)
	return err == nil && ok
}

type entry struct {
	kind     model.Kind
	expr     string
	name     string
	severity model.Severity
}

// Evaluation order of the scanner follows this slice.
// The lookaheads only see the rest of the same line.
var definitions = []entry{
	{model.KindReentrancy, `(\.\s*call\s*{.*value\s*:.*})(?!.*_mutex)`, "Reentrancy Vulnerability", model.SeverityCritical},
	{model.KindIntegerOverflow, `(\+\+|\+=|=\s*\+)(?!.*SafeMath)`, "Integer Overflow", model.SeverityHigh},
	{model.KindUncheckedReturn, `\.call\s*{.*}(?!.*require\s*\()`, "Unchecked Return Value", model.SeverityMedium},
	{model.KindTxOrigin, `tx\.origin(?!.*!=)`, "tx.origin Authentication", model.SeverityHigh},
	{model.KindSelfDestruct, `selfdestruct|suicide`, "Unsecured Self-Destruct", model.SeverityCritical},
}

var (
	table  []Rule
	byKind map[model.Kind]Rule
	byName map[string]model.Kind
)

func init() {
	table = make([]Rule, 0, len(definitions))
	byKind = make(map[model.Kind]Rule, len(definitions))
	byName = make(map[string]model.Kind, len(definitions))
	for _, d := range definitions {
		r := Rule{
			Kind:     d.kind,
			Name:     d.name,
			Severity: d.severity,
			pattern:  regexp2.MustCompile(d.expr, regexp2.IgnoreCase),
		}
		table = append(table, r)
		byKind[d.kind] = r
		byName[d.name] = d.kind
	}
}

// All returns the rule table in evaluation order. The slice is a copy.
func All() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}

func Lookup(kind model.Kind) (Rule, bool) {
	r, ok := byKind[kind]
	return r, ok
}

// KindByName resolves a display name such as "Integer Overflow" to its kind.
func KindByName(name string) (model.Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// ParseKind accepts either a kind identifier or a display name.
func ParseKind(s string) (model.Kind, bool) {
	if _, ok := byKind[model.Kind(s)]; ok {
		return model.Kind(s), true
	}
	return KindByName(s)
}
