package sidebar

import "path/filepath"

// Config holds the settings for one pipeline run. A Config is built once
// per invocation and passed through every stage; stages never consult
// ambient state.
type Config struct {
	DocsRoot       string   // directory scanned for markdown files
	OutputPath     string   // generated TypeScript artifact
	IgnorePatterns []string // glob patterns excluded from the scan
	SortByPrefix   bool     // numeric-prefix ordering within groups
}

// DefaultConfig returns the standard VitePress layout: docs/ as the root,
// the artifact under docs/.vitepress/, index and readme files excluded
// along with the framework-internal .vitepress directory.
func DefaultConfig() Config {
	return Config{
		DocsRoot:       "docs",
		OutputPath:     filepath.Join("docs", ".vitepress", "sidebar-auto.ts"),
		IgnorePatterns: []string{"index.md", "README.md", ".vitepress/**"},
		SortByPrefix:   true,
	}
}
