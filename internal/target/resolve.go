package target

import (
	"errors"
	"fmt"

	"smoke-env/internal/redact"
)

// ErrTokenMissing is returned when the token variable is unset or empty.
var ErrTokenMissing = errors.New("token variable is missing or empty")

// Defaults used when Settings leaves a field empty.
const (
	DefaultScheme   = "http"
	DefaultHost     = "localhost"
	DefaultPortVar  = "VITE_PORT"
	DefaultPort     = "5173"
	DefaultTokenVar = "AUTH_TOKEN"
)

// Settings describes where the target server lives.
type Settings struct {
	BaseURL     string // explicit base URL; wins over the fields below
	Scheme      string
	Host        string
	PortVar     string // env var holding the dev server port
	DefaultPort string
	TokenVar    string // env var holding the auth token
}

// Target is a resolved smoke-test destination.
type Target struct {
	URL         string
	Redacted    string
	Fingerprint string
	TokenVar    string
	LeakPattern string // non-empty when the token looks like a real credential
}

// BaseURL returns s.BaseURL if set, otherwise scheme://host:port with the
// port read from env[s.PortVar].
func BaseURL(env map[string]string, s Settings) string {
	if s.BaseURL != "" {
		return s.BaseURL
	}

	scheme := orDefault(s.Scheme, DefaultScheme)
	host := orDefault(s.Host, DefaultHost)
	port := env[orDefault(s.PortVar, DefaultPortVar)]
	if port == "" {
		port = orDefault(s.DefaultPort, DefaultPort)
	}
	return scheme + "://" + host + ":" + port
}

// Resolve builds the target URL from env and settings.
func Resolve(env map[string]string, s Settings) (*Target, error) {
	tokenVar := orDefault(s.TokenVar, DefaultTokenVar)
	token := env[tokenVar]
	if token == "" {
		return nil, fmt.Errorf("%s: %w", tokenVar, ErrTokenMissing)
	}

	base := BaseURL(env, s)
	leak, _ := redact.LiveCredential(token)

	// Redacted is never derived from URL; tokens may hold '#' or '&'.
	return &Target{
		URL:         BuildURL(base, token),
		Redacted:    BuildURL(base, redact.Placeholder),
		Fingerprint: redact.Fingerprint(token),
		TokenVar:    tokenVar,
		LeakPattern: leak,
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
