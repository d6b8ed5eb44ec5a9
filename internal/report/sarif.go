package report

import (
	"encoding/json"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/rules"
)

const sarifSchema = "https://json.schemastore.org/sarif-2.1.0.json"

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}
type sarifDriver struct {
	Name  string      `json:"name"`
	Rules []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}
type sarifLoc struct {
	Physical sarifPhys `json:"physicalLocation"`
}
type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}
type sarifArt struct {
	URI string `json:"uri"`
}
type sarifRegion struct {
	StartLine int          `json:"startLine"`
	Snippet   sarifMessage `json:"snippet"`
}

// Level maps a severity onto the SARIF result level.
func Level(sev model.Severity) string {
	switch sev {
	case model.SeverityHigh, model.SeverityCritical:
		return "error"
	case model.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}

func ToSARIF(result *model.AuditResult) ([]byte, error) {
	var driverRules []sarifRule
	for _, r := range rules.All() {
		driverRules = append(driverRules, sarifRule{ID: string(r.Kind), Name: r.Name, ShortDescription: sarifMessage{Text: r.Name}})
	}
	results := []sarifResult{}
	for _, f := range result.AllFindings() {
		var locs []sarifLoc
		for _, l := range f.Locations {
			locs = append(locs, sarifLoc{Physical: sarifPhys{
				ArtifactLocation: sarifArt{URI: f.File},
				Region:           sarifRegion{StartLine: l.LineNumber, Snippet: sarifMessage{Text: l.LineText}},
			}})
		}
		results = append(results, sarifResult{
			RuleID:    string(f.Kind),
			Level:     Level(f.Severity),
			Message:   sarifMessage{Text: f.Name},
			Locations: locs,
		})
	}
	s := sarif{
		Version: "2.1.0",
		Schema:  sarifSchema,
		Runs:    []sarifRun{{Tool: sarifTool{Driver: sarifDriver{Name: "depaudit", Rules: driverRules}}, Results: results}},
	}
	return json.MarshalIndent(s, "", "  ")
}
