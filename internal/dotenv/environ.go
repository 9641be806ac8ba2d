package dotenv

import (
	"os"
	"strings"
)

// Environ returns the current process environment as a key-value map
func Environ() map[string]string {
	env := make(map[string]string)
	for _, e := range os.Environ() {
		if key, value, ok := strings.Cut(e, "="); ok {
			env[key] = value
		}
	}
	return env
}

// Overlay returns a copy of base with every non-empty value from top
// applied over it.
func Overlay(base, top map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(top))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range top {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}
