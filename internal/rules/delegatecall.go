package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// delegatecallUsage flags delegatecall into arbitrary code
type delegatecallUsage struct{}

func (r *delegatecallUsage) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "delegatecall-usage",
		Title:          "Use of delegatecall",
		Severity:       model.SeverityHigh,
		Description:    "delegatecall executes foreign code in the caller's storage context; a compromised target owns the contract.",
		Recommendation: "Restrict delegatecall targets to audited, immutable implementations and guard the call with access control.",
	}
}

func (r *delegatecallUsage) Check(line string, lineNo int) *model.Finding {
	if strings.Contains(line, ".delegatecall(") {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
