package model

import "time"

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityOrder = map[Severity]int{
	SeverityInfo:     1,
	SeverityLow:      2,
	SeverityMedium:   3,
	SeverityHigh:     4,
	SeverityCritical: 5,
}

// ParseSeverity maps user input to a Severity; unknown values become low.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityInfo:
		return Severity(s)
	default:
		return SeverityLow
	}
}

func SeverityGTE(a, b Severity) bool {
	return severityOrder[a] >= severityOrder[b]
}

// Kind identifies one entry of the rule table.
type Kind string

const (
	KindReentrancy      Kind = "reentrancy"
	KindIntegerOverflow Kind = "integer_overflow"
	KindUncheckedReturn Kind = "unchecked_return"
	KindTxOrigin        Kind = "tx_origin"
	KindSelfDestruct    Kind = "unsecured_selfdestruct"
)

type Location struct {
	LineNumber int    `json:"line_number"`
	LineText   string `json:"line"`
	Context    string `json:"context"`
}

type Finding struct {
	Kind        Kind       `json:"kind,omitempty"`
	Name        string     `json:"name"`
	Severity    Severity   `json:"severity"`
	Confidence  float64    `json:"confidence"`
	Locations   []Location `json:"lines"`
	Fingerprint string     `json:"fingerprint,omitempty"`
}

// NewFinding is the only constructor that guarantees a non-empty location list.
func NewFinding(kind Kind, name string, sev Severity, confidence float64, first Location, more ...Location) Finding {
	locs := make([]Location, 0, 1+len(more))
	locs = append(locs, first)
	locs = append(locs, more...)
	return Finding{Kind: kind, Name: name, Severity: sev, Confidence: confidence, Locations: locs}
}

// Primary returns the first location, if any.
func (f Finding) Primary() (Location, bool) {
	if len(f.Locations) == 0 {
		return Location{}, false
	}
	return f.Locations[0], true
}

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

type Features struct {
	NodeCount     int        `json:"nodes"`
	EdgeCount     int        `json:"edges"`
	CallDepth     int        `json:"depth"`
	Complexity    Complexity `json:"complexity,omitempty"`
	FunctionCount int        `json:"function_count"`
	StateVarCount int        `json:"state_var_count"`
	ModifierCount int        `json:"modifier_count"`
	EventCount    int        `json:"event_count"`
}

type Report struct {
	IsVulnerable       bool      `json:"is_vulnerable"`
	VulnerabilityScore float64   `json:"vulnerability_score"`
	Findings           []Finding `json:"vulnerabilities"`
	Features           Features  `json:"features"`
	Error              string    `json:"error,omitempty"`
}

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeRevert  Outcome = "revert"
)

type TestCase struct {
	Description  string         `json:"description"`
	FunctionName string         `json:"function"`
	Parameters   map[string]any `json:"params"`
	Expected     Outcome        `json:"expected"`
	IsBoundary   bool           `json:"edge_case"`
}

type Patch struct {
	Kind Kind   `json:"kind,omitempty"`
	Text string `json:"patch"`
}

// FileResult is one audited file as produced by the engine adapter.
type FileResult struct {
	File          string        `json:"file"`
	Report        Report        `json:"report"`
	Classifier    *Prediction   `json:"classifier,omitempty"`
	AdjustedScore float64       `json:"adjusted_score"`
	Suppressed    int           `json:"suppressed"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Prediction is what an external classifier reported for one contract.
type Prediction struct {
	Probability float64 `json:"probability"`
	Model       string  `json:"model,omitempty"`
}

type AuditRequest struct {
	Paths        []string
	ConfigPath   string
	BaselinePath string
}

type AuditResult struct {
	Files   []FileResult  `json:"files"`
	Elapsed time.Duration `json:"elapsed"`
}

// AllFindings flattens findings across files, paired with their file.
func (r *AuditResult) AllFindings() []FileFinding {
	var out []FileFinding
	for _, fr := range r.Files {
		for _, f := range fr.Report.Findings {
			out = append(out, FileFinding{File: fr.File, Finding: f})
		}
	}
	return out
}

type FileFinding struct {
	File string
	Finding
}
