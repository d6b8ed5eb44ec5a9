package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint computes a stable hash for a finding key
func Fingerprint(kind string, line int, text string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s", kind, line, text)
	return hex.EncodeToString(h.Sum(nil))
}

// ContentKey hashes contract source for memoization.
func ContentKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
