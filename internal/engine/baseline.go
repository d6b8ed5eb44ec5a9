package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/model"
	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/util"
)

// Baseline is a set of accepted findings that later audits should not report again.
// Entries are keyed by file and fingerprint.
type Baseline struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	Fingerprints map[string]bool `json:"fingerprints"`
}

func baselineKey(file, fingerprint string) string {
	return util.ContentKey(file, fingerprint)
}

func (b Baseline) Empty() bool { return len(b.Fingerprints) == 0 }

// Contains reports whether f in file was accepted when the baseline was written.
func (b Baseline) Contains(file string, f model.Finding) bool {
	return f.Fingerprint != "" && b.Fingerprints[baselineKey(file, f.Fingerprint)]
}

func (b *Baseline) add(file, fingerprint string) {
	if fingerprint == "" {
		return
	}
	if b.Fingerprints == nil {
		b.Fingerprints = map[string]bool{}
	}
	b.Fingerprints[baselineKey(file, fingerprint)] = true
}

// Keys lists the baseline entries in stable order.
func (b Baseline) Keys() []string {
	keys := make([]string, 0, len(b.Fingerprints))
	for k := range b.Fingerprints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// loadBaseline accepts either the object written by writeBaseline or a bare
// JSON array of keys. An empty path yields an empty baseline.
func loadBaseline(path string) (Baseline, error) {
	if path == "" {
		return Baseline{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Baseline{}, err
	}
	return decodeBaseline(data)
}

func decodeBaseline(data []byte) (Baseline, error) {
	b := Baseline{Fingerprints: map[string]bool{}}
	var keys []string
	if json.Unmarshal(data, &keys) == nil {
		for _, k := range keys {
			b.Fingerprints[k] = true
		}
		return b, nil
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return Baseline{}, fmt.Errorf("decode baseline: %w", err)
	}
	if b.Fingerprints == nil {
		b.Fingerprints = map[string]bool{}
	}
	return b, nil
}

func filterByBaseline(file string, findings []model.Finding, b Baseline) []model.Finding {
	if b.Empty() {
		return findings
	}
	var kept []model.Finding
	for _, f := range findings {
		if !b.Contains(file, f) {
			kept = append(kept, f)
		}
	}
	return kept
}

func writeBaseline(path string, findings []model.FileFinding) error {
	if path == "" {
		return nil
	}
	b := Baseline{GeneratedAt: time.Now().UTC(), Fingerprints: map[string]bool{}}
	for _, f := range findings {
		b.add(f.File, f.Fingerprint)
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
