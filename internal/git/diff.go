package git

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docwright/docwright/internal/output"
)

// Diffstat represents the change statistics for a diff.
type Diffstat struct {
	Files      int // Number of files changed
	Insertions int // Number of lines inserted
	Deletions  int // Number of lines deleted
}

// StagedDiff returns the unified diff of the index against HEAD.
// An empty string means nothing is staged.
func StagedDiff() (string, error) {
	out, err := Run("diff", "--cached")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get staged diff", err)
	}
	return out, nil
}

// StagedFiles returns the paths of all files staged in the index,
// relative to the repository root.
func StagedFiles() ([]string, error) {
	out, err := Run("diff", "--cached", "--name-only")
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to list staged files", err)
	}
	return splitLines(out), nil
}

// DiffRange returns the unified diff between two revisions.
func DiffRange(from, to string) (string, error) {
	out, err := Run("diff", from+".."+to)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to diff "+from+".."+to, err)
	}
	return out, nil
}

// LsFiles returns all tracked paths, relative to the repository root.
func LsFiles() ([]string, error) {
	out, err := Run("ls-files")
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to list tracked files", err)
	}
	return splitLines(out), nil
}

// StagedDiffstat returns the change statistics for the staged diff.
func StagedDiffstat() (Diffstat, error) {
	out, err := Run("diff", "--cached", "--stat")
	if err != nil {
		return Diffstat{}, output.NewSystemErrorWithCause("failed to get staged diffstat", err)
	}
	return parseDiffstat(out), nil
}

// splitLines splits command output into non-empty trimmed lines.
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// diffstatLineRe matches the summary line of git diff --stat.
// Example: " 3 files changed, 45 insertions(+), 12 deletions(-)"
var diffstatLineRe = regexp.MustCompile(`(\d+)\s+files?\s+changed(?:,\s+(\d+)\s+insertions?\(\+\))?(?:,\s+(\d+)\s+deletions?\(-\))?`)

// parseDiffstat extracts counts from the last non-empty line of
// git diff --stat output. A diff with no changes yields a zero value.
func parseDiffstat(out string) Diffstat {
	lines := strings.Split(out, "\n")
	for idx := len(lines) - 1; idx >= 0; idx-- {
		line := strings.TrimSpace(lines[idx])
		if line == "" {
			continue
		}
		matches := diffstatLineRe.FindStringSubmatch(line)
		if matches == nil {
			return Diffstat{}
		}
		return Diffstat{
			Files:      matchInt(matches, 1),
			Insertions: matchInt(matches, 2),
			Deletions:  matchInt(matches, 3),
		}
	}
	return Diffstat{}
}

// matchInt extracts an int from a regex match group, returning 0 on error.
func matchInt(matches []string, idx int) int {
	if idx >= len(matches) || matches[idx] == "" {
		return 0
	}
	val, err := strconv.Atoi(matches[idx])
	if err != nil {
		return 0
	}
	return val
}
