// Package changeset formats and writes changeset files under .changeset/,
// in the layout release tooling expects: YAML frontmatter mapping the
// package to a bump level, followed by a human-readable summary.
package changeset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docwright/docwright/internal/output"
)

// DefaultDir is the directory changeset files are written to, relative to
// the repository root.
const DefaultDir = ".changeset"

// Bump levels in increasing order of impact.
const (
	BumpPatch = "patch"
	BumpMinor = "minor"
	BumpMajor = "major"
)

// Entry is one changeset: a bump level and summary for a package.
type Entry struct {
	Package string // package name the bump applies to
	Bump    string // patch, minor, or major
	Summary string // one-sentence user-facing description
}

// Validate checks the entry is complete and the bump level is known.
func (e *Entry) Validate() error {
	if e.Package == "" {
		return output.NewUserError("changeset package name is empty")
	}
	switch e.Bump {
	case BumpPatch, BumpMinor, BumpMajor:
	default:
		return output.NewUserError(fmt.Sprintf("invalid bump level %q: want patch, minor, or major", e.Bump))
	}
	if strings.TrimSpace(e.Summary) == "" {
		return output.NewUserError("changeset summary is empty")
	}
	return nil
}

// Format renders the entry as a changeset file.
func Format(e *Entry) string {
	var builder strings.Builder
	builder.WriteString("---\n")
	fmt.Fprintf(&builder, "%q: %s\n", e.Package, e.Bump)
	builder.WriteString("---\n\n")
	builder.WriteString(strings.TrimSpace(e.Summary))
	builder.WriteString("\n")
	return builder.String()
}

// Write persists the entry under dir, deriving the filename from the
// summary. An existing file with the same name gets a numeric suffix
// instead of being overwritten. Returns the written path.
func Write(e *Entry, dir string) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", output.NewSystemErrorWithCause("failed to create changeset directory "+dir, err)
	}

	name := Slug(e.Summary)
	path := filepath.Join(dir, name+".md")
	for suffix := 2; fileExists(path); suffix++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.md", name, suffix))
	}

	if err := os.WriteFile(path, []byte(Format(e)), 0o644); err != nil {
		return "", output.NewSystemErrorWithCause("failed to write changeset "+path, err)
	}
	return path, nil
}

// slugWords caps how many words of the summary feed the filename.
const slugWords = 4

// Slug derives a filesystem-safe name from a summary sentence:
// the first few words, lowercased, non-alphanumerics collapsed to hyphens.
func Slug(summary string) string {
	words := strings.Fields(strings.ToLower(summary))
	if len(words) > slugWords {
		words = words[:slugWords]
	}

	var builder strings.Builder
	for _, word := range words {
		cleaned := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, word)
		if cleaned == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte('-')
		}
		builder.WriteString(cleaned)
	}

	if builder.Len() == 0 {
		return "change"
	}
	return builder.String()
}

// ParseResponse extracts a bump level and summary from the model's
// two-line answer. Tolerates markdown list markers and label prefixes
// like "Bump:" that models tend to add despite instructions.
func ParseResponse(content string) (bump, summary string, err error) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		line = strings.Trim(line, "`")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return "", "", output.NewSystemError("model response did not contain a bump level and summary")
	}

	bump = strings.ToLower(lines[0])
	if idx := strings.LastIndexByte(bump, ':'); idx >= 0 {
		bump = strings.TrimSpace(bump[idx+1:])
	}
	bump = strings.Trim(bump, "`")

	summary = lines[1]
	if len(summary) >= 8 && strings.EqualFold(summary[:8], "summary:") {
		summary = strings.TrimSpace(summary[8:])
	}

	switch bump {
	case BumpPatch, BumpMinor, BumpMajor:
		return bump, summary, nil
	}
	return "", "", output.NewSystemError(fmt.Sprintf("model proposed unknown bump level %q", bump))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
