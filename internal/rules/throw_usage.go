package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// throwUsage flags the deprecated throw statement
type throwUsage struct{}

func (r *throwUsage) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "throw-usage",
		Title:          "Use of deprecated throw",
		Severity:       model.SeverityMedium,
		Description:    "throw was removed in Solidity 0.5; it consumes all remaining gas on failure.",
		Recommendation: "Use require(), revert() or assert() instead of throw.",
	}
}

func (r *throwUsage) Check(line string, lineNo int) *model.Finding {
	if strings.Contains(line, "throw;") {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
