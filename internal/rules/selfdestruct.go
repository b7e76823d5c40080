package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// selfdestructUsage flags selfdestruct; suicideUsage its deprecated alias

type selfdestructUsage struct{}

func (r *selfdestructUsage) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "selfdestruct-usage",
		Title:          "Use of selfdestruct",
		Severity:       model.SeverityHigh,
		Description:    "selfdestruct bricks the contract and forcibly reroutes its ether balance.",
		Recommendation: "Prefer a pausable or upgradeable pattern; if selfdestruct is required, guard it with owner-only access control.",
	}
}

func (r *selfdestructUsage) Check(line string, lineNo int) *model.Finding {
	if strings.Contains(line, "selfdestruct(") {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}

type suicideUsage struct{}

func (r *suicideUsage) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "suicide-usage",
		Title:          "Use of deprecated suicide",
		Severity:       model.SeverityHigh,
		Description:    "suicide is the deprecated alias of selfdestruct and carries the same risks.",
		Recommendation: "Remove the call or replace it with a guarded selfdestruct, preferring pausable patterns.",
	}
}

func (r *suicideUsage) Check(line string, lineNo int) *model.Finding {
	if strings.Contains(line, "suicide(") {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
