package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

var severityColors = map[model.Severity]*color.Color{
	model.SeverityError:  color.New(color.FgRed, color.Bold),
	model.SeverityHigh:   color.New(color.FgRed),
	model.SeverityMedium: color.New(color.FgYellow),
	model.SeverityLow:    color.New(color.FgCyan),
	model.SeverityInfo:   color.New(color.FgGreen),
}

// WriteTable renders findings as a severity-colored list.
func WriteTable(w io.Writer, findings []model.Finding) {
	for _, f := range findings {
		c, ok := severityColors[f.Severity]
		if !ok {
			c = color.New(color.Reset)
		}
		fmt.Fprintf(w, "%s %s line %d: %s\n", c.Sprintf("[%s]", f.Severity), f.RuleID, f.Line, f.Message)
		if f.Recommendation != "" {
			fmt.Fprintf(w, "    fix: %s\n", f.Recommendation)
		}
	}
}
