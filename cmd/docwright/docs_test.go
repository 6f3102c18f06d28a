package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPagePath(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"internal/llm/llm.go", filepath.Join("docs", "internal", "llm", "llm.md")},
		{"main.go", filepath.Join("docs", "main.md")},
		{"scripts/build.sh", filepath.Join("docs", "scripts", "build.md")},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if got := pagePath("docs", tt.file); got != tt.want {
				t.Errorf("pagePath(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestDocsTargets_ExplicitMissingFile(t *testing.T) {
	_, err := docsTargets([]string{filepath.Join(t.TempDir(), "gone.go")}, false)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "no such file") {
		t.Errorf("error = %q, want missing-file message", err.Error())
	}
}

func TestDocsTargets_ExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "thing.go")
	if err := os.WriteFile(file, []byte("package thing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := docsTargets([]string{file}, false)
	if err != nil {
		t.Fatalf("docsTargets() error = %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Errorf("docsTargets() = %v, want [%s]", got, file)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileExists(file) {
		t.Error("fileExists() should report existing file")
	}
	if fileExists(filepath.Join(dir, "absent.md")) {
		t.Error("fileExists() should reject missing file")
	}
	if fileExists(dir) {
		t.Error("fileExists() should reject directories")
	}
}
