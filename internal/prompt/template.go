// Package prompt provides the prompt templates for docwright's AI commands.
//
// Templates are markdown files with YAML frontmatter. Resolution order is
// project-local (.docwright/templates) → user global → built-in, so teams
// can override any built-in prompt by dropping a file with the same name
// into their repo.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docwright/docwright/internal/config"
)

// Template represents a prompt template with metadata and content.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	System      string `yaml:"system,omitempty"`

	// Template content (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display: "built-in", "global", or "project"
	Source string `yaml:"-"`
}

// Load finds and loads a template by name.
// Resolution order: project-local → user global → built-in.
func Load(name string) (*Template, error) {
	if tmpl, err := loadFromDir(projectTemplatesDir(), name); err == nil {
		tmpl.Source = "project"
		return tmpl, nil
	}

	if tmpl, err := loadFromDir(globalTemplatesDir(), name); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}

	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}

	return nil, fmt.Errorf("template %q not found", name)
}

// projectTemplatesDir returns the project-local templates directory.
func projectTemplatesDir() string {
	return filepath.Join(".docwright", "templates")
}

// globalTemplatesDir returns the user's global templates directory.
func globalTemplatesDir() string {
	dir := config.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "templates")
}

// loadFromDir attempts to load a template from a directory.
func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	return parseTemplate(string(data))
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:] // skip opening ---
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}
