package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

type Options struct {
	Extensions []string
}

func DefaultOptions() Options {
	return Options{
		Extensions: []string{".csv"},
	}
}

// Files lists the names of files directly under root whose extension matches
// one of opts.Extensions (dot optional, case-insensitive). The listing does
// not recurse; subdirectories are skipped. Names come back in lexical order.
func Files(fsys fs.FS, root string, opts Options) ([]string, error) {
	exts := normalizeExts(opts.Extensions)

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !exts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		matches = append(matches, entry.Name())
	}
	return matches, nil
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.TrimSpace(strings.ToLower(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}
