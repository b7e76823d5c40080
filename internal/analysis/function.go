package analysis

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/solidity"
)

// Function-level checks run against one finalized FunctionRecord. Unlike
// the line rules these see the whole function, so they can reason about
// ordering between lines.

var (
	VisibilityMeta = model.RuleMeta{
		ID:             "visibility",
		Title:          "Public function without state mutability specifier",
		Severity:       model.SeverityMedium,
		Description:    "Public functions that do not declare view or pure are assumed to mutate state, which costs gas and widens the attack surface.",
		Recommendation: "Declare view or pure where the function does not write state, or restrict visibility.",
	}
	PayableValidationMeta = model.RuleMeta{
		ID:             "payable-validation",
		Title:          "Payable function does not validate msg.value",
		Severity:       model.SeverityMedium,
		Description:    "Ether sent to the function is accepted without any check on the amount.",
		Recommendation: "Validate msg.value with require() or an if guard, or revert when no payment is expected.",
	}
	ReentrancyOrderMeta = model.RuleMeta{
		ID:             "reentrancy",
		Title:          "State change at or after external call",
		Severity:       model.SeverityHigh,
		Description:    "The function performs an external call before its state mutation settles, so the callee can re-enter and observe stale state.",
		Recommendation: "Reorder to update state before external calls, add a reentrancy guard, or switch to a pull-payment pattern.",
	}
	UnprotectedInitMeta = model.RuleMeta{
		ID:             "unprotected-init",
		Title:          "Unprotected initialize function",
		Severity:       model.SeverityHigh,
		Description:    "Anyone can call initialize and take over the contract's initial configuration.",
		Recommendation: "Guard initialize with an initializer or owner-only modifier.",
	}
	UnprotectedUpgradeMeta = model.RuleMeta{
		ID:             "unprotected-upgrade",
		Title:          "Unprotected upgrade function",
		Severity:       model.SeverityHigh,
		Description:    "An unguarded upgrade path lets anyone swap the contract implementation.",
		Recommendation: "Guard upgrade with owner-only access control.",
	}
	UnprotectedWithdrawMeta = model.RuleMeta{
		ID:             "unprotected-withdraw",
		Title:          "Unprotected withdraw function",
		Severity:       model.SeverityHigh,
		Description:    "An unguarded withdraw lets anyone drain the contract balance.",
		Recommendation: "Guard withdraw with owner-only access control or per-account accounting.",
	}
	UnprotectedSelfdestructMeta = model.RuleMeta{
		ID:             "unprotected-selfdestruct",
		Title:          "selfdestruct reachable without access control",
		Severity:       model.SeverityHigh,
		Description:    "A function without an owner-only modifier can destroy the contract.",
		Recommendation: "Guard any selfdestruct path with owner-only access control.",
	}
)

// Metas lists the function-level checks in the order they are applied.
func Metas() []model.RuleMeta {
	return []model.RuleMeta{
		VisibilityMeta,
		PayableValidationMeta,
		ReentrancyOrderMeta,
		UnprotectedInitMeta,
		UnprotectedUpgradeMeta,
		UnprotectedWithdrawMeta,
		UnprotectedSelfdestructMeta,
	}
}

// AnalyzeFunction applies the structural heuristics to one function and
// returns its findings in fixed check order. All findings point one line
// past the signature, into the function body.
func AnalyzeFunction(fn solidity.FunctionRecord) []model.Finding {
	var out []model.Finding
	bodyLine := fn.StartLine + 1

	if fn.Visibility == "public" && !containsMutability(fn) {
		out = append(out, functionFinding(VisibilityMeta, bodyLine))
	}

	if fn.IsPayable && !validatesMsgValue(fn.Body) {
		out = append(out, functionFinding(PayableValidationMeta, bodyLine))
	}

	if fn.HasExternalCall && fn.HasStateChange && stateChangeAfterCall(fn.Body) {
		out = append(out, functionFinding(ReentrancyOrderMeta, bodyLine))
	}

	if !fn.HasOwnerGuard() {
		switch fn.Name {
		case "initialize":
			out = append(out, functionFinding(UnprotectedInitMeta, bodyLine))
		case "upgrade":
			out = append(out, functionFinding(UnprotectedUpgradeMeta, bodyLine))
		case "withdraw":
			out = append(out, functionFinding(UnprotectedWithdrawMeta, bodyLine))
		}
		for _, l := range fn.Body {
			if strings.Contains(l, "selfdestruct") {
				out = append(out, functionFinding(UnprotectedSelfdestructMeta, bodyLine))
				break
			}
		}
	}
	return out
}

// containsMutability looks for pure/view in the signature or anywhere in
// the body text.
func containsMutability(fn solidity.FunctionRecord) bool {
	if strings.Contains(fn.Signature, "pure") || strings.Contains(fn.Signature, "view") {
		return true
	}
	for _, l := range fn.Body {
		if strings.Contains(l, "pure") || strings.Contains(l, "view") {
			return true
		}
	}
	return false
}

func validatesMsgValue(body []string) bool {
	for _, l := range body {
		if strings.HasPrefix(l, "require(msg.value") || strings.HasPrefix(l, "if (msg.value") {
			return true
		}
	}
	return false
}

// stateChangeAfterCall compares the index of the first state-change line
// with the index of the first external-call line. A mutation at or after
// the external interaction violates checks-effects-interactions. This is
// a line-order heuristic, not control-flow analysis.
func stateChangeAfterCall(body []string) bool {
	firstCall, firstChange := -1, -1
	for i, l := range body {
		if firstCall < 0 && solidity.HasExternalCall(l) {
			firstCall = i
		}
		if firstChange < 0 && solidity.HasStateChange(l) {
			firstChange = i
		}
	}
	if firstCall < 0 || firstChange < 0 {
		return false
	}
	return firstChange >= firstCall
}

func functionFinding(m model.RuleMeta, line int) model.Finding {
	return model.Finding{
		RuleID:         m.ID,
		Severity:       m.Severity,
		Message:        m.Title,
		Line:           line,
		Column:         1,
		Description:    m.Description,
		Recommendation: m.Recommendation,
	}
}
