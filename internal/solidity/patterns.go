package solidity

import "strings"

// Substring patterns shared by the line rules and the function extractor.
// A single line can both trigger a line rule and contribute to the
// function-level facts; the two signals are independent.

// HasExternalCall reports whether the line performs a value-bearing
// external interaction.
func HasExternalCall(line string) bool {
	return strings.Contains(line, ".call{") ||
		strings.Contains(line, ".send(") ||
		strings.Contains(line, ".transfer(")
}

// HasStateChange reports whether the line mutates contract state.
func HasStateChange(line string) bool {
	return strings.Contains(line, "balances[") ||
		strings.Contains(line, "+=") ||
		strings.Contains(line, "-=")
}

// HasGuard reports whether the line carries a conditional or assertion
// that bounds its effect.
func HasGuard(line string) bool {
	return strings.Contains(line, "require(") ||
		strings.Contains(line, "if (") ||
		strings.Contains(line, "assert(")
}
