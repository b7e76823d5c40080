package engine

import "github.com/jordanbenzacken/checkmysmartcontract/internal/model"

// dedupWindow is the line distance within which two findings with the same
// rule id are considered the same instance.
const dedupWindow = 2

// mergeDedup appends line-rule findings to the function-level findings,
// suppressing a line finding when one with the same rule id already sits
// within dedupWindow lines. Earlier findings win, so function-level
// findings beat line rules and the catalog's evaluation order is the
// tie-break between line rules.
func mergeDedup(functionFindings, lineFindings []model.Finding) []model.Finding {
	out := functionFindings
	for _, lf := range lineFindings {
		if hasNearDuplicate(out, lf) {
			continue
		}
		out = append(out, lf)
	}
	return out
}

func hasNearDuplicate(accepted []model.Finding, f model.Finding) bool {
	for _, a := range accepted {
		if a.RuleID != f.RuleID {
			continue
		}
		d := a.Line - f.Line
		if d < 0 {
			d = -d
		}
		if d <= dedupWindow {
			return true
		}
	}
	return false
}
