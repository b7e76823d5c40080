package rules

import (
	"regexp"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

var reAddress = regexp.MustCompile(`\b0x[0-9a-fA-F]{40}\b`)

// hardcodedAddress flags 40-hex-digit address literals
type hardcodedAddress struct{}

func (r *hardcodedAddress) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "hardcoded-address",
		Title:          "Hardcoded address literal",
		Severity:       model.SeverityMedium,
		Description:    "Hardcoded addresses cannot be rotated and break across network deployments.",
		Recommendation: "Pass addresses through the constructor or a setter guarded by access control.",
	}
}

func (r *hardcodedAddress) Check(line string, lineNo int) *model.Finding {
	if reAddress.MatchString(line) {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
