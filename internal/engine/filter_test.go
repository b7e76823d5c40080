package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/config"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

func TestFilterBySeverity(t *testing.T) {
	findings := []model.Finding{
		{RuleID: "tx-origin", Severity: model.SeverityHigh},
		{RuleID: "throw-usage", Severity: model.SeverityMedium},
		{RuleID: "state-visibility", Severity: model.SeverityLow},
		{RuleID: model.RuleSyntax, Severity: model.SeverityError},
	}
	out := FilterBySeverity(findings, "high")
	assert.Equal(t, []string{"tx-origin", model.RuleSyntax}, ruleIDs(out))

	// unknown threshold keeps everything
	assert.Len(t, FilterBySeverity(findings, ""), 4)
}

func TestFilterByRules(t *testing.T) {
	cfg := config.Config{Rules: []string{"tx-origin"}}
	findings := []model.Finding{
		{RuleID: "tx-origin", Severity: model.SeverityHigh},
		{RuleID: "throw-usage", Severity: model.SeverityMedium},
		{RuleID: model.RuleAnalysisComplete, Severity: model.SeverityInfo},
	}
	out := FilterByRules(findings, cfg)
	assert.Equal(t, []string{"tx-origin", model.RuleAnalysisComplete}, ruleIDs(out))

	// empty allowlist passes everything through
	assert.Len(t, FilterByRules(findings, config.Config{}), 3)
}

func TestApplyIgnoresConfigRule(t *testing.T) {
	cfg := config.Config{Ignore: []config.IgnoreRule{{Rule: "throw-usage", Reason: "legacy code"}}}
	findings := []model.Finding{
		{RuleID: "throw-usage", Severity: model.SeverityMedium, Line: 3},
		{RuleID: "tx-origin", Severity: model.SeverityHigh, Line: 4},
	}
	out := ApplyIgnores(findings, nil, cfg)
	assert.Equal(t, []string{"tx-origin"}, ruleIDs(out))
}

func TestApplyIgnoresInlineMarker(t *testing.T) {
	lines := []string{
		"contract C {",
		"    // checkmysmartcontract:ignore timestamp-dependence",
		"    uint t = block.timestamp;",
		"}",
	}
	findings := []model.Finding{
		{RuleID: "timestamp-dependence", Severity: model.SeverityMedium, Line: 3},
	}
	out := ApplyIgnores(findings, lines, config.Config{})
	assert.Empty(t, out)

	// marker for a different rule does not suppress
	findings[0].RuleID = "tx-origin"
	out = ApplyIgnores(findings, lines, config.Config{})
	assert.Len(t, out, 1)
}

func TestBaselineRoundTrip(t *testing.T) {
	findings := []model.Finding{
		{RuleID: "tx-origin", Severity: model.SeverityHigh, Line: 4, Fingerprint: "aaa"},
		{RuleID: "throw-usage", Severity: model.SeverityMedium, Line: 9, Fingerprint: "bbb"},
	}
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, WriteBaseline(path, findings[:1]))

	fingerprints, err := LoadBaseline(path)
	require.NoError(t, err)
	out := FilterByBaseline(findings, fingerprints)
	assert.Equal(t, []string{"throw-usage"}, ruleIDs(out))
}

func TestMergeDedupWindow(t *testing.T) {
	functionFindings := []model.Finding{{RuleID: "reentrancy", Line: 3}}
	lineFindings := []model.Finding{
		{RuleID: "reentrancy", Line: 5},  // within window, suppressed
		{RuleID: "reentrancy", Line: 10}, // far away, kept
		{RuleID: "tx-origin", Line: 3},   // different rule, kept
	}
	out := mergeDedup(functionFindings, lineFindings)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"reentrancy", "reentrancy", "tx-origin"}, ruleIDs(out))
	assert.Equal(t, 10, out[1].Line)
}
