package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docwright/docwright/internal/output"
)

// runCommand executes the root command with args and returns stdout, stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// seedDocs writes a small docs tree and returns its root.
func seedDocs(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "docs")
	pages := []string{
		"intro.md",
		"guide/01. setup.md",
		"guide/02. usage.md",
	}
	for _, page := range pages {
		path := filepath.Join(root, filepath.FromSlash(page))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# page\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestSidebarCommand_WritesArtifact(t *testing.T) {
	root := seedDocs(t)
	out := filepath.Join(root, ".vitepress", "sidebar-auto.ts")

	stdout, _, err := runCommand(t, "sidebar", "--docs", root, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, "Wrote "+out) {
		t.Errorf("output should confirm the write: %q", stdout)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	for _, want := range []string{"DefaultTheme", "General", "Guide", "/guide/01. setup"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("artifact should contain %q:\n%s", want, content)
		}
	}
}

func TestSidebarCommand_JSON(t *testing.T) {
	root := seedDocs(t)
	out := filepath.Join(root, ".vitepress", "sidebar-auto.ts")

	stdout, _, err := runCommand(t, "sidebar", "--json", "--docs", root, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Groups     int    `json:"groups"`
		Items      int    `json:"items"`
		OutputPath string `json:"output_path"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\noutput: %q", err, stdout)
	}
	if result.Groups != 2 || result.Items != 3 {
		t.Errorf("got %d groups / %d items, want 2 / 3", result.Groups, result.Items)
	}
	if result.OutputPath != out {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, out)
	}
}

func TestSidebarCommand_DryRunWritesNothing(t *testing.T) {
	root := seedDocs(t)
	out := filepath.Join(root, ".vitepress", "sidebar-auto.ts")

	stdout, _, err := runCommand(t, "sidebar", "--dry-run", "--docs", root, "--out", out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run should not write the artifact")
	}
	for _, want := range []string{"General", "Guide", "setup"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("dry run output should contain %q: %q", want, stdout)
		}
	}
}

func TestSidebarCommand_MissingRootIsUserError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, stderr, err := runCommand(t, "sidebar", "--docs", missing)
	if err == nil {
		t.Fatal("expected error for missing docs root")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, "Error") {
		t.Errorf("stderr should carry the error: %q", stderr)
	}
}

func TestSidebarCommand_EmptyTreeWarns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "docs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(root, ".vitepress", "sidebar-auto.ts")

	_, stderr, err := runCommand(t, "sidebar", "--docs", root, "--out", out)
	if err != nil {
		t.Fatalf("empty tree should not fail: %v", err)
	}
	if !strings.Contains(stderr, "Warning") {
		t.Errorf("stderr should carry a warning: %q", stderr)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("artifact should still be written: %v", err)
	}
	if !strings.Contains(string(content), "[]") {
		t.Errorf("empty artifact should contain an empty array:\n%s", content)
	}
}
