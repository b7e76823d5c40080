package engine

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

type baseline struct {
	GeneratedAt  time.Time       `json:"generatedAt"`
	Fingerprints map[string]bool `json:"fingerprints"`
}

// LoadBaseline reads a baseline file written by WriteBaseline. A plain
// JSON array of fingerprints is accepted too.
func LoadBaseline(path string) (map[string]bool, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fp []string
	if err := json.Unmarshal(data, &fp); err == nil {
		m := make(map[string]bool, len(fp))
		for _, f := range fp {
			m[f] = true
		}
		return m, nil
	}
	var b baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return b.Fingerprints, nil
}

// FilterByBaseline drops findings whose fingerprint is in the baseline.
func FilterByBaseline(findings []model.Finding, fingerprints map[string]bool) []model.Finding {
	if len(fingerprints) == 0 {
		return findings
	}
	var out []model.Finding
	for _, f := range findings {
		if f.Fingerprint != "" && fingerprints[f.Fingerprint] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// WriteBaseline records the fingerprints of the given findings.
func WriteBaseline(path string, findings []model.Finding) error {
	if path == "" {
		return nil
	}
	b := baseline{GeneratedAt: time.Now(), Fingerprints: map[string]bool{}}
	for _, f := range findings {
		if f.Fingerprint != "" {
			b.Fingerprints[f.Fingerprint] = true
		}
	}
	data, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, data, 0o644)
}
