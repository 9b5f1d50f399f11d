// Package formatter renders a ScanResult for humans or machines.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mcncl/jsonscout/internal/errors"
	"github.com/mcncl/jsonscout/internal/models"
)

// Formatter writes scan results in the selected rendering mode.
type Formatter struct{}

// NewFormatter creates a new Formatter instance.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// JSON writes the machine-readable rendering: the ScanResult as one
// indented JSON object. Re-parsing the output reproduces the result
// structure field for field.
func (f *Formatter) JSON(w io.Writer, result models.ScanResult) error {
	if result.Results == nil {
		result.Results = map[string]models.FileResults{}
	}
	if result.MissingKeys == nil {
		result.MissingKeys = []string{}
	}
	if result.Keys == nil {
		result.Keys = []string{}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.NewOutputError("failed to encode scan result", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return errors.NewOutputError("failed to write scan result", err)
	}
	return nil
}

// Pretty writes the human-readable rendering: a header describing the
// scan, one block per matching file sorted by path, and a trailing
// section for terms that matched nowhere.
func (f *Formatter) Pretty(w io.Writer, result models.ScanResult) error {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\nSearched: %s\n", result.SearchedRoot))
	sensitivity := "case-insensitive"
	if result.CaseSensitive {
		sensitivity = "case-sensitive"
	}
	b.WriteString(fmt.Sprintf("Keys (%s): %s\n", sensitivity, strings.Join(result.Keys, ", ")))
	switch {
	case result.KeysOnly:
		b.WriteString("Mode: keys-only\n")
	case result.ValuesOnly:
		b.WriteString("Mode: values-only\n")
	default:
		b.WriteString("Mode: keys + values\n")
	}
	b.WriteString("\n")

	if len(result.Results) == 0 {
		b.WriteString("No matches found in provided files.\n\n")
	} else {
		files := make([]string, 0, len(result.Results))
		for file := range result.Results {
			files = append(files, file)
		}
		sort.Strings(files)

		for _, file := range files {
			byTerm := result.Results[file]
			b.WriteString(fmt.Sprintf("File: %s\n", file))
			for _, term := range result.Keys {
				paths := byTerm[term]
				if len(paths) > 0 {
					b.WriteString(fmt.Sprintf("  %s ✅  (%d matches)\n", term, len(paths)))
					for _, p := range paths {
						b.WriteString(fmt.Sprintf("    - %s\n", p))
					}
				} else {
					b.WriteString(fmt.Sprintf("  %s —\n", term))
				}
			}
			b.WriteString("\n")
		}
	}

	if len(result.MissingKeys) > 0 {
		b.WriteString("Missing keys (not found anywhere):\n")
		for _, t := range result.MissingKeys {
			b.WriteString(fmt.Sprintf("  %s ❌\n", t))
		}
	} else {
		b.WriteString("All keys were found at least once. 🎉\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.NewOutputError("failed to write scan result", err)
	}
	return nil
}
