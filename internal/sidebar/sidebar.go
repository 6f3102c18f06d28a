// Package sidebar generates a VitePress sidebar configuration from a tree
// of markdown files.
//
// The pipeline is a single synchronous pass: scan the docs root, group files
// by their top-level directory, derive display titles, order items and
// groups, and write the result as a generated TypeScript module. Each run
// rebuilds the structure from scratch and overwrites the previous artifact.
//
// Authors control ordering through filenames: a leading "<digits>." prefix
// is stripped from displayed titles but read back out as the sort key.
package sidebar

// Item is one navigable document in the sidebar. Link is root-relative,
// prefixed with "/", with the .md extension stripped.
type Item struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Group is one navigation section. The key order text/items/collapsed is
// the contract the VitePress theme config depends on.
type Group struct {
	Text      string `json:"text"`
	Items     []Item `json:"items"`
	Collapsed bool   `json:"collapsed"`
}

// Result summarizes a completed run for the caller to report.
type Result struct {
	Groups     int      `json:"groups"`
	Items      int      `json:"items"`
	OutputPath string   `json:"output_path"`
	Warnings   []string `json:"warnings,omitempty"`
}

// Generate runs the full pipeline: scan, group, sort, write.
// Returns a *Error with KindConfig when the docs root is invalid and
// KindIO when the artifact cannot be written. An empty docs tree is not
// an error; it produces an empty structure and a warning on the Result.
func Generate(cfg Config) (*Result, error) {
	groups, warnings, err := build(cfg)
	if err != nil {
		return nil, err
	}

	if err := write(groups, cfg.OutputPath); err != nil {
		return nil, err
	}

	result := &Result{
		Groups:     len(groups),
		OutputPath: cfg.OutputPath,
		Warnings:   warnings,
	}
	for _, group := range groups {
		result.Items += len(group.Items)
	}
	return result, nil
}

// Build computes the sidebar structure without writing the artifact.
// Used by the MCP preview tool and by the sidebar command's --dry-run.
func Build(cfg Config) ([]Group, []string, error) {
	return build(cfg)
}

func build(cfg Config) ([]Group, []string, error) {
	files, err := scan(cfg)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	if len(files) == 0 {
		warnings = append(warnings, "no markdown files found under "+cfg.DocsRoot)
	}

	groups := assemble(groupFiles(files), cfg.SortByPrefix)
	return groups, warnings, nil
}
