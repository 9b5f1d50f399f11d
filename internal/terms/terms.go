// Package terms prepares the user-supplied search terms for a scan.
package terms

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mcncl/jsonscout/internal/errors"
)

// Normalize trims every term, drops empties, lower-cases unless
// caseSensitive, and removes duplicates while preserving first-seen
// order. Normalizing an already-normalized list is a no-op.
func Normalize(raw []string, caseSensitive bool) []string {
	cleaned := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !caseSensitive {
			t = strings.ToLower(t)
		}
		cleaned = append(cleaned, t)
	}

	seen := make(map[string]struct{}, len(cleaned))
	unique := make([]string, 0, len(cleaned))
	for _, t := range cleaned {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}

// Split breaks a comma-separated list into trimmed, non-empty terms.
func Split(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadFile reads search terms from a file. The content is tried as a
// JSON array of strings first; anything else, including malformed
// JSON, is treated as plain text with commas, carriage returns, and
// newlines all acting as separators. Malformed JSON is never an
// error.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("keys file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read keys file '%s'", path),
			err,
		)
	}

	text := strings.TrimSpace(string(data))
	if list, ok := parseStringArray(text); ok {
		return list, nil
	}

	replaced := strings.NewReplacer("\r", "\n", ",", "\n").Replace(text)
	parts := strings.Split(replaced, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// parseStringArray accepts the text only when it is a JSON array
// whose elements are all strings.
func parseStringArray(text string) ([]string, bool) {
	var raw []any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		s, ok := el.(string)
		if !ok {
			return nil, false
		}
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out, true
}
