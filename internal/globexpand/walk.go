package globexpand

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Expand resolves pattern against the filesystem rooted at baseDir
// (normally the directory containing the CSV file) and returns the
// matching paths, each relative to baseDir and prefixed with "./". A
// pattern with no glob metacharacters is returned as a single literal
// path without touching the filesystem. A pattern with metacharacters
// that matches nothing returns an empty, nil-error slice: the row
// processor treats zero matches as "skip this row", not a fatal error.
func Expand(baseDir, pattern string) ([]string, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(pattern), "./")

	if !HasMetacharacters(clean) {
		return []string{"./" + clean}, nil
	}

	re, err := compile(clean)
	if err != nil {
		return nil, err
	}

	var matches []string
	walkErr := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if re.MatchString(rel) {
			matches = append(matches, "./"+rel)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Strings(matches)
	return matches, nil
}
