package engine

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/config"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// ApplyIgnores filters findings based on config ignore rules and inline
// suppression markers in the analyzed source.
// Marker format: // checkmysmartcontract:ignore RULE_ID
func ApplyIgnores(findings []model.Finding, lines []string, cfg config.Config) []model.Finding {
	var out []model.Finding
	for _, f := range findings {
		if isIgnored(f, lines, cfg) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isIgnored(f model.Finding, lines []string, cfg config.Config) bool {
	if f.Severity == model.SeverityError || f.Severity == model.SeverityInfo {
		return false
	}
	for _, ig := range cfg.Ignore {
		if strings.EqualFold(ig.Rule, f.RuleID) {
			return true
		}
	}
	return hasInlineSuppression(lines, f.RuleID, f.Line)
}

// hasInlineSuppression looks for a suppression marker on the finding line
// or the line above it.
func hasInlineSuppression(lines []string, ruleID string, line int) bool {
	needle := "checkmysmartcontract:ignore " + ruleID
	for _, i := range []int{line - 1, line - 2} {
		if i < 0 || i >= len(lines) {
			continue
		}
		if strings.Contains(lines[i], needle) {
			return true
		}
	}
	return false
}
