// Package scanner drives a search across one file or a directory
// tree, collecting per-file matches into a ScanResult.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcncl/jsonscout/internal/errors"
)

// Files returns the candidate file paths under root. A single file is
// always returned as-is, regardless of its extension; a directory is
// walked recursively and only regular files whose extension
// (case-insensitive, without the leading dot) is in extensions are
// kept. Unreadable subtrees are skipped, matching the best-effort
// scan policy.
func Files(root string, extensions []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("path not found: "+root, errors.ErrPathNotFound)
		}
		return nil, errors.NewInputError("failed to stat "+root, err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		e = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), ".")
		if e != "" {
			exts[e] = struct{}{}
		}
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if _, ok := exts[ext]; ok {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.NewInputError("failed to walk "+root, walkErr)
	}
	return files, nil
}
