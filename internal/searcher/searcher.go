// Package searcher implements the recursive structural search over a
// parsed JSON value.
package searcher

import (
	"strconv"
	"strings"

	"github.com/mcncl/jsonscout/internal/models"
)

// Options controls the matching scope of a search. KeysOnly and
// ValuesOnly are mutually exclusive; with neither set, both keys and
// values are tested.
type Options struct {
	CaseSensitive bool
	KeysOnly      bool
	ValuesOnly    bool
}

// Search walks value depth-first in document order and returns one
// Match per (term, path) where the term is a substring of the
// normalized key or stringified scalar at that path. Structural paths
// are built by appending "/" plus the object key or array index to
// the prefix; keys containing "/" are not escaped, so such paths are
// not reversible.
func Search(value models.Value, terms []string, opts Options, pathPrefix string) []models.Match {
	var matches []models.Match

	switch value.Kind {
	case models.Object:
		for _, member := range value.Members {
			memberPath := pathPrefix + "/" + member.Key
			if !opts.ValuesOnly {
				matches = appendTermMatches(matches, member.Key, terms, opts, memberPath)
			}
			if opts.KeysOnly {
				continue
			}
			if member.Value.IsContainer() {
				matches = append(matches, Search(member.Value, terms, opts, memberPath)...)
			} else {
				matches = appendTermMatches(matches, member.Value.ScalarString(), terms, opts, memberPath)
			}
		}

	case models.Array:
		for i, item := range value.Items {
			itemPath := pathPrefix + "/" + strconv.Itoa(i)
			if item.IsContainer() {
				matches = append(matches, Search(item, terms, opts, itemPath)...)
			} else if !opts.KeysOnly {
				matches = appendTermMatches(matches, item.ScalarString(), terms, opts, itemPath)
			}
		}

	default:
		// Scalar at the root of the document.
		if !opts.KeysOnly {
			path := pathPrefix
			if path == "" {
				path = "/"
			}
			matches = appendTermMatches(matches, value.ScalarString(), terms, opts, path)
		}
	}

	return matches
}

// appendTermMatches tests every term for substring containment in the
// normalized subject, appending one Match per containing term.
func appendTermMatches(matches []models.Match, subject string, terms []string, opts Options, path string) []models.Match {
	if !opts.CaseSensitive {
		subject = strings.ToLower(subject)
	}
	for _, term := range terms {
		if strings.Contains(subject, term) {
			matches = append(matches, models.Match{Term: term, Path: path})
		}
	}
	return matches
}
