// Package redact masks secrets for human-readable output.
package redact

import "strings"

// Placeholder replaces a secret value wherever one would be printed.
const Placeholder = "REDACTED"

const (
	// minReveal is the fewest characters shown at each end of a fingerprint.
	minReveal     = 4
	// revealDivisor sets the reveal width to len/revealDivisor for long tokens.
	revealDivisor = 4
	// minHidden is the fewest characters a fingerprint must keep hidden.
	minHidden     = 4

	fingerprintEmpty    = "[empty]"
	fingerprintRedacted = "[redacted]"
)

// Fingerprint returns a short display form of token revealing only its
// first and last max(4, len/4) characters, e.g. "1234...cdef". Tokens that
// would leave fewer than 4 characters hidden (under 12) are fully masked.
func Fingerprint(token string) string {
	if token == "" {
		return fingerprintEmpty
	}

	runes := []rune(token)
	n := max(minReveal, len(runes)/revealDivisor)
	if len(runes)-2*n < minHidden {
		return fingerprintRedacted
	}

	return string(runes[:n]) + "..." + string(runes[len(runes)-n:])
}

// secretMarkers flag a variable name as holding a secret wherever they appear.
var secretMarkers = []string{"SECRET", "PASSWORD", "TOKEN", "API_KEY", "APIKEY", "CREDENTIAL", "PRIVATE", "AUTH"}

// IsSensitiveKey reports whether the variable named key should have its
// value hidden in a dump. Names ending in KEY (STRIPE_KEY) count too.
func IsSensitiveKey(key string) bool {
	name := strings.ToUpper(key)
	if strings.HasSuffix(name, "KEY") {
		return true
	}
	for _, marker := range secretMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}
