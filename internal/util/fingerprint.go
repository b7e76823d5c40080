package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint computes a stable hash for a finding key
func Fingerprint(ruleID string, line int, context string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s", ruleID, line, context)
	return hex.EncodeToString(h.Sum(nil))
}
