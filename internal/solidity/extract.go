package solidity

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
)

// ErrNoContract is returned when the source has no contract declaration.
var ErrNoContract = errors.New("no contract declaration found")

// StateVisibilityMeta describes the preamble check run during extraction.
var StateVisibilityMeta = model.RuleMeta{
	ID:             "state-visibility",
	Title:          "Public state variable without getter",
	Severity:       model.SeverityLow,
	Description:    "Public state variables expose an implicit getter and widen the contract surface.",
	Recommendation: "Declare state variables private or internal and expose explicit view functions, or mark fixed values constant/immutable.",
}

// FunctionRecord is the metadata and body of one source-level function,
// accumulated line by line during the extraction pass. Exactly one record
// is open at a time; nesting is not modeled.
type FunctionRecord struct {
	Name            string
	StartLine       int // 1-based line of the signature
	Signature       string
	Visibility      string // public, private, internal, external or ""
	IsPayable       bool
	Modifiers       []string
	Body            []string // trimmed lines between this signature and the next
	HasExternalCall bool
	HasStateChange  bool
}

// Extraction is the outcome of one pass over normalized source lines.
type Extraction struct {
	ContractLine     int // 1-based line of the contract declaration
	Functions        []FunctionRecord
	PreambleFindings []model.Finding
}

var (
	reFunctionName = regexp.MustCompile(`^function\s+(\w+)`)
	reIdentifier   = regexp.MustCompile(`[A-Za-z_]\w*`)
)

// visibility keywords in resolution order; the first one present in the
// signature line wins.
var visibilityKeywords = []string{"public", "private", "internal", "external"}

// signatureKeywords are excluded when collecting modifier identifiers from
// a signature line.
var signatureKeywords = map[string]struct{}{
	"function": {}, "public": {}, "private": {}, "internal": {}, "external": {},
	"payable": {}, "pure": {}, "view": {}, "constant": {}, "virtual": {},
	"override": {}, "returns": {}, "memory": {}, "storage": {}, "calldata": {},
}

// Extract runs a single left-to-right pass over normalized, trimmed source
// lines and partitions them into a state-variable preamble and a sequence
// of function records. Function boundaries are recognized purely by
// signature lines; brace depth is not tracked, so a nested block whose
// line starts with the function keyword opens a new record. That is a
// documented limitation of the heuristic, not a case to special-case.
func Extract(lines []string) (*Extraction, error) {
	contractIdx := -1
	for i, l := range lines {
		if isContractDecl(strings.TrimSpace(l)) {
			contractIdx = i
			break
		}
	}
	if contractIdx < 0 {
		return nil, ErrNoContract
	}

	ex := &Extraction{ContractLine: contractIdx + 1}
	var current *FunctionRecord
	inPreamble := true
	for i := contractIdx + 1; i < len(lines); i++ {
		t := strings.TrimSpace(lines[i])
		if isFunctionDecl(t) {
			inPreamble = false
			if current != nil {
				ex.Functions = append(ex.Functions, *current)
			}
			current = openRecord(t, i+1)
			continue
		}
		if inPreamble {
			if isPublicStateVar(t) {
				ex.PreambleFindings = append(ex.PreambleFindings, model.Finding{
					RuleID:         StateVisibilityMeta.ID,
					Severity:       StateVisibilityMeta.Severity,
					Message:        StateVisibilityMeta.Title,
					Line:           i + 1,
					Column:         1,
					Description:    StateVisibilityMeta.Description,
					Recommendation: StateVisibilityMeta.Recommendation,
				})
			}
			continue
		}
		current.Body = append(current.Body, t)
		if HasExternalCall(t) {
			current.HasExternalCall = true
		}
		if HasStateChange(t) {
			current.HasStateChange = true
		}
	}
	if current != nil {
		ex.Functions = append(ex.Functions, *current)
	}
	return ex, nil
}

func isContractDecl(trimmed string) bool {
	return strings.HasPrefix(trimmed, "contract ") ||
		strings.HasPrefix(trimmed, "abstract contract ")
}

// isFunctionDecl requires a boundary after the keyword so identifiers like
// functionCall do not open a record.
func isFunctionDecl(trimmed string) bool {
	return strings.HasPrefix(trimmed, "function ") ||
		strings.HasPrefix(trimmed, "function(")
}

// isPublicStateVar matches preamble declarations that are public but
// neither constant nor immutable.
func isPublicStateVar(trimmed string) bool {
	return strings.Contains(trimmed, "public") &&
		!strings.Contains(trimmed, "constant") &&
		!strings.Contains(trimmed, "immutable")
}

func openRecord(signature string, lineNo int) *FunctionRecord {
	rec := &FunctionRecord{
		StartLine: lineNo,
		Signature: signature,
		IsPayable: strings.Contains(signature, "payable"),
		Modifiers: extractModifiers(signature),
	}
	if m := reFunctionName.FindStringSubmatch(signature); len(m) == 2 {
		rec.Name = m[1]
	}
	for _, kw := range visibilityKeywords {
		if strings.Contains(signature, kw) {
			rec.Visibility = kw
			break
		}
	}
	return rec
}

// extractModifiers collects identifiers attached after the parameter list,
// excluding language keywords and anything after a returns clause.
func extractModifiers(signature string) []string {
	rest := signature
	if i := strings.Index(rest, ")"); i >= 0 {
		rest = rest[i+1:]
	}
	if i := strings.Index(rest, "returns"); i >= 0 {
		rest = rest[:i]
	}
	var mods []string
	for _, tok := range reIdentifier.FindAllString(rest, -1) {
		if _, reserved := signatureKeywords[tok]; reserved {
			continue
		}
		mods = append(mods, tok)
	}
	return mods
}

// HasOwnerGuard reports whether the record carries an owner-only modifier
// such as onlyOwner.
func (f *FunctionRecord) HasOwnerGuard() bool {
	for _, m := range f.Modifiers {
		low := strings.ToLower(m)
		if strings.HasPrefix(low, "only") || strings.Contains(low, "owner") || strings.Contains(low, "auth") {
			return true
		}
	}
	return false
}
