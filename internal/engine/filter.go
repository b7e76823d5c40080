package engine

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/config"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// Presentation-layer filters. These shape what the CLI renders; the
// engine's returned sequence itself is never filtered.

// FilterBySeverity removes findings below the configured severity
// threshold. Error findings always pass.
func FilterBySeverity(findings []model.Finding, threshold string) []model.Finding {
	t := model.ParseSeverity(threshold)
	var out []model.Finding
	for _, f := range findings {
		if model.SeverityGTE(f.Severity, t) {
			out = append(out, f)
		}
	}
	return out
}

// FilterByRules keeps only findings whose rule id is in cfg.Rules when the
// list is non-empty. Sentinel and error findings always pass.
func FilterByRules(findings []model.Finding, cfg config.Config) []model.Finding {
	if len(cfg.Rules) == 0 {
		return findings
	}
	allowed := map[string]struct{}{}
	for _, id := range cfg.Rules {
		allowed[strings.TrimSpace(id)] = struct{}{}
	}
	var out []model.Finding
	for _, f := range findings {
		if f.Severity == model.SeverityError || f.Severity == model.SeverityInfo {
			out = append(out, f)
			continue
		}
		if _, ok := allowed[f.RuleID]; ok {
			out = append(out, f)
		}
	}
	return out
}
