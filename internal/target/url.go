// Package target composes and redacts the URL a smoke run opens.
package target

import (
	"net/url"
	"strings"

	"smoke-env/internal/redact"
)

// TokenParam is the query parameter carrying the auth token.
const TokenParam = "token"

// BuildURL appends ?token=<token> to base, separated by exactly one '/'.
// The token is inserted verbatim, not percent-encoded, so a token holding
// '#' or '&' yields a URL that RedactURL cannot fully mask.
func BuildURL(base, token string) string {
	return strings.TrimRight(base, "/") + "/?" + TokenParam + "=" + token
}

// RedactURL replaces the value of every "token" query parameter with
// REDACTED. All other parameters keep their order and encoding, and a URL
// with no token parameter is returned unchanged.
func RedactURL(rawURL string) string {
	rest, fragment, hasFragment := strings.Cut(rawURL, "#")
	base, query, hasQuery := strings.Cut(rest, "?")
	if !hasQuery {
		return rawURL
	}

	params := strings.Split(query, "&")
	redacted := false
	for i, param := range params {
		name, _, _ := strings.Cut(param, "=")
		if unescapeName(name) != TokenParam {
			continue
		}
		params[i] = name + "=" + redact.Placeholder
		redacted = true
	}
	if !redacted {
		return rawURL
	}

	out := base + "?" + strings.Join(params, "&")
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

func unescapeName(name string) string {
	unescaped, err := url.QueryUnescape(name)
	if err != nil {
		return name
	}
	return unescaped
}
