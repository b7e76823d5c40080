package rules

import (
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/solidity"
)

// reentrancy flags a line that mixes an external call with a state change
type reentrancy struct{}

func (r *reentrancy) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "reentrancy",
		Title:          "Potential reentrancy: external call combined with state change",
		Severity:       model.SeverityHigh,
		Description:    "An external call on the same line as a balance or state mutation can be re-entered before the mutation settles.",
		Recommendation: "Follow checks-effects-interactions: update state before the external call, or add a reentrancy guard.",
	}
}

func (r *reentrancy) Check(line string, lineNo int) *model.Finding {
	if solidity.HasExternalCall(line) && solidity.HasStateChange(line) {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
