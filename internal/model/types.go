package model

import "time"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityInfo   Severity = "info"
	// SeverityError is reserved for input/parse failures surfaced as findings.
	SeverityError Severity = "error"
)

func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityError):
		return SeverityError
	case string(SeverityHigh):
		return SeverityHigh
	case string(SeverityMedium):
		return SeverityMedium
	case string(SeverityLow):
		return SeverityLow
	default:
		return SeverityInfo
	}
}

func SeverityGTE(a, b Severity) bool {
	order := map[Severity]int{SeverityInfo: 1, SeverityLow: 2, SeverityMedium: 3, SeverityHigh: 4, SeverityError: 5}
	return order[a] >= order[b]
}

// Rule ids outside the catalog: pipeline sentinels and failures.
const (
	RuleAnalysisComplete = "analysis-complete"
	RuleInputValidation  = "input-validation"
	RuleSyntax           = "syntax"
	RuleInternalError    = "internal-error"
)

type RuleMeta struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Finding is one reported issue. Line and Column are 1-based and refer to
// the normalized source; line-level checks always report column 1.
type Finding struct {
	RuleID         string   `json:"ruleId"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Line           int      `json:"line"`
	Column         int      `json:"column"`
	Description    string   `json:"description,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
	Fingerprint    string   `json:"fingerprint,omitempty"`
}

// AnalysisResult holds the findings of one engine invocation in detection
// order. It is always non-empty: an issue-free analysis carries the single
// analysis-complete sentinel finding.
type AnalysisResult struct {
	Findings []Finding     `json:"findings"`
	Elapsed  time.Duration `json:"elapsed"`
}
