package redact

import "regexp"

// credentialShape is the format of a credential issued by a real provider.
type credentialShape struct {
	provider string
	re       *regexp.Regexp
}

// Smoke tokens are meant to be throwaway values; one of these shapes means a
// live credential ended up in the env file.
var credentialShapes = []credentialShape{
	{"GitHub Token", regexp.MustCompile(`^ghp_[a-zA-Z0-9]{36}$`)},
	{"Stripe Live Key", regexp.MustCompile(`^sk_live_[a-zA-Z0-9]+$`)},
	{"Stripe Test Key", regexp.MustCompile(`^sk_test_[a-zA-Z0-9]+$`)},
	{"AWS Access Key", regexp.MustCompile(`^AKIA[0-9A-Z]{16}$`)},
	{"JWT", regexp.MustCompile(`^eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+$`)},
}

// LiveCredential names the provider whose credential format token has.
// ok is false for anything that does not look issued.
func LiveCredential(token string) (provider string, ok bool) {
	for _, shape := range credentialShapes {
		if shape.re.MatchString(token) {
			return shape.provider, true
		}
	}
	return "", false
}
