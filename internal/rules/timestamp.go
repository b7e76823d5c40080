package rules

import (
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// timestampDependence flags logic that reads block.timestamp
type timestampDependence struct{}

func (r *timestampDependence) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:             "timestamp-dependence",
		Title:          "Dependence on block.timestamp",
		Severity:       model.SeverityMedium,
		Description:    "Miners can skew block.timestamp by several seconds, which makes it unsafe as a source of randomness or for tight deadlines.",
		Recommendation: "Avoid block.timestamp for randomness; tolerate a drift of at least 15 seconds in time-based logic.",
	}
}

func (r *timestampDependence) Check(line string, lineNo int) *model.Finding {
	if strings.Contains(line, "block.timestamp") {
		return lineFinding(r.Meta(), lineNo)
	}
	return nil
}
