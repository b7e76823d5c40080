package rules

import (
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// Rule is a stateless single-line check. Check receives one normalized
// line and its 1-based number and returns at most one finding. Rules never
// look beyond the line they are given; anything needing cross-line context
// belongs to the function analyzer.
type Rule interface {
	Meta() model.RuleMeta
	Check(line string, lineNo int) *model.Finding
}

// Registry holds the rule catalog. Registration order is the catalog
// order, which doubles as the tie-break during deduplication.
type Registry struct{ rules []Rule }

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(rule Rule) { r.rules = append(r.rules, rule) }

func (r *Registry) RegisterBuiltin() {
	r.Register(&reentrancy{})
	r.Register(&txOrigin{})
	r.Register(&timestampDependence{})
	r.Register(&hardcodedAddress{})
	r.Register(&uncheckedSend{})
	r.Register(&delegatecallUsage{})
	r.Register(&selfdestructUsage{})
	r.Register(&suicideUsage{})
	r.Register(&throwUsage{})
	r.Register(&gasLimit{})
}

// Run evaluates every rule against every line and collects the findings,
// line order first, catalog order within a line.
func (r *Registry) Run(lines []string) []model.Finding {
	var out []model.Finding
	for i, line := range lines {
		for _, rule := range r.rules {
			if f := rule.Check(line, i+1); f != nil {
				out = append(out, *f)
			}
		}
	}
	return out
}

func (r *Registry) Rules() []Rule { return r.rules }

// lineFinding builds the fixed finding a rule reports, always at column 1.
func lineFinding(m model.RuleMeta, lineNo int) *model.Finding {
	return &model.Finding{
		RuleID:         m.ID,
		Severity:       m.Severity,
		Message:        m.Title,
		Line:           lineNo,
		Column:         1,
		Description:    m.Description,
		Recommendation: m.Recommendation,
	}
}
