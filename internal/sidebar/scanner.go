package sidebar

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// markdownExt is the documentation-file extension the scanner collects.
const markdownExt = ".md"

// scan walks the docs root and returns slash-separated paths relative to
// it, for every markdown file not excluded by an ignore pattern. The walk
// is read-only; ordering is whatever the filesystem yields.
func scan(cfg Config) ([]string, error) {
	info, err := os.Stat(cfg.DocsRoot)
	if err != nil {
		return nil, configError("docs root "+cfg.DocsRoot+" does not exist", err)
	}
	if !info.IsDir() {
		return nil, configError("docs root "+cfg.DocsRoot+" is not a directory", nil)
	}

	var files []string
	walkErr := filepath.WalkDir(cfg.DocsRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), markdownExt) {
			return nil
		}

		rel, err := filepath.Rel(cfg.DocsRoot, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if ignored(rel, cfg.IgnorePatterns) {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if walkErr != nil {
		return nil, configError("failed to scan docs root "+cfg.DocsRoot, walkErr)
	}

	return files, nil
}

// ignored reports whether a relative path matches any ignore pattern.
// Patterns are tried against the full slash path (for directory wildcards
// like ".vitepress/**") and against the bare filename (so "index.md"
// excludes index pages at any depth).
func ignored(rel string, patterns []string) bool {
	base := path.Base(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
