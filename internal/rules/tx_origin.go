package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// txOrigin flags use of tx.origin for authorization
type txOrigin struct{}

func (r *txOrigin) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "tx-origin",
		Title:          "Use of tx.origin for authorization is dangerous",
		Severity:       model.SeverityHigh,
		Description:    "tx.origin can be phished through intermediate contract calls.",
		Recommendation: "Use msg.sender together with proper access control modifiers instead of tx.origin.",
	}
}

func (r *txOrigin) Check(line string, lineNo int) *model.Finding {
	if strings.Contains(line, "tx.origin") {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
