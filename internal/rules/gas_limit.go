package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/solidity"
)

// gasLimit flags loops with no visible bound check on the same line
type gasLimit struct{}

func (r *gasLimit) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "gas-limit",
		Title:          "Loop without visible bound check",
		Severity:       model.SeverityMedium,
		Description:    "Unbounded loops can exhaust the block gas limit and make the function permanently uncallable.",
		Recommendation: "Bound the iteration count or split the work across transactions.",
	}
}

func (r *gasLimit) Check(line string, lineNo int) *model.Finding {
	hasLoop := strings.Contains(line, "for (") || strings.Contains(line, "while (")
	if hasLoop && !solidity.HasGuard(line) {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
