package report

import (
	"bytes"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

const (
	toolName = "checkmysmartcontract"
	toolURI  = "https://github.com/jordanbenzacken/checkmysmartcontract"
	// Findings carry no file path; pasted source is reported under a
	// stable pseudo-artifact.
	artifactURI = "contract.sol"
)

// ToSARIF renders findings as a SARIF 2.1.0 report.
func ToSARIF(findings []model.Finding) ([]byte, error) {
	rep, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}
	run := sarif.NewRunWithInformationURI(toolName, toolURI)

	seen := map[string]bool{}
	for _, f := range findings {
		if !seen[f.RuleID] {
			seen[f.RuleID] = true
			rule := run.AddRule(f.RuleID)
			if f.Description != "" {
				rule.WithDescription(f.Description)
			}
		}
		run.CreateResultForRule(f.RuleID).
			WithLevel(sarifLevel(f.Severity)).
			WithMessage(sarif.NewTextMessage(f.Message)).
			AddLocation(sarif.NewLocationWithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewSimpleArtifactLocation(artifactURI)).
					WithRegion(sarif.NewSimpleRegion(f.Line, f.Line)),
			))
	}
	rep.AddRun(run)

	var buf bytes.Buffer
	if err := rep.PrettyWrite(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sarifLevel(s model.Severity) string {
	switch s {
	case model.SeverityHigh, model.SeverityError:
		return "error"
	case model.SeverityMedium:
		return "warning"
	case model.SeverityInfo:
		return "none"
	default:
		return "note"
	}
}
