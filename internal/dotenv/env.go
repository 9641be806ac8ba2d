// Package dotenv reads KEY=VALUE files and locates them on disk.
package dotenv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"smoke-env/internal/redact"
)

// ParseResult contains parsed entries and any issues found
type ParseResult struct {
	Entries    map[string]string
	Duplicates []string
	Malformed  []int // 1-based line numbers skipped for lacking '='
}

// Load reads a .env file into a map. Keys and values are taken verbatim
// around the first '='; lines without '=' are skipped.
func Load(path string) (map[string]string, error) {
	result, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// ParseFile reads and parses a .env file
func ParseFile(path string) (*ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dotenv file: %w", err)
	}
	defer file.Close()

	result, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("read dotenv file %s: %w", path, err)
	}
	return result, nil
}

// Parse reads KEY=VALUE lines from r.
func Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{
		Entries:    make(map[string]string),
		Duplicates: []string{},
		Malformed:  []int{},
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Skip empty lines and full-line comments
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			result.Malformed = append(result.Malformed, lineNo)
			continue
		}

		if _, seen := result.Entries[key]; seen {
			result.Duplicates = append(result.Duplicates, key)
		}
		result.Entries[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Marshal outputs entries in dotenv form, sorted by key. With redact set,
// values of sensitive keys are replaced before serialising.
func Marshal(entries map[string]string, redactValues bool) (string, error) {
	out := make(map[string]string, len(entries))
	for key, value := range entries {
		if redactValues && redact.IsSensitiveKey(key) {
			value = redact.Placeholder
		}
		out[key] = value
	}
	return godotenv.Marshal(out)
}
