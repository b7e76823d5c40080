package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/solidity"
)

// uncheckedSend flags send/transfer whose result is not guarded
type uncheckedSend struct{}

func (r *uncheckedSend) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "unchecked-send",
		Title:          "Unchecked send or transfer",
		Severity:       model.SeverityMedium,
		Description:    "send returns false on failure instead of reverting; ignoring the result lets ether transfers fail silently.",
		Recommendation: "Wrap the call in require(), or use call{value: ...} and handle the success boolean.",
	}
}

func (r *uncheckedSend) Check(line string, lineNo int) *model.Finding {
	hasSend := strings.Contains(line, ".send(") || strings.Contains(line, ".transfer(")
	if hasSend && !solidity.HasGuard(line) {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
