package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/docwright/docwright/internal/sidebar"
)

// writeDocs creates a docs tree from relative paths under a temp dir.
func writeDocs(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("# page\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestSidebarOptions_ToConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := SidebarOptions{}.toConfig()
		want := sidebar.DefaultConfig()
		if cfg.DocsRoot != want.DocsRoot || cfg.OutputPath != want.OutputPath {
			t.Errorf("empty options should keep defaults, got %+v", cfg)
		}
		if !cfg.SortByPrefix {
			t.Error("sorting should default to enabled")
		}
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := SidebarOptions{
			DocsRoot: "site/docs",
			NoSort:   true,
		}.toConfig()
		if cfg.DocsRoot != "site/docs" {
			t.Errorf("DocsRoot = %q", cfg.DocsRoot)
		}
		if cfg.SortByPrefix {
			t.Error("NoSort should disable sorting")
		}
	})
}

func TestHandleSidebarPreview(t *testing.T) {
	root := writeDocs(t, "intro.md", "guide/01. setup.md")

	handler := handleSidebarPreview()
	_, out, err := handler(context.Background(), nil, SidebarOptions{DocsRoot: root})
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}

	if len(out.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(out.Groups))
	}
	if out.Groups[0].Text != "General" {
		t.Errorf("first group = %q, want General", out.Groups[0].Text)
	}

	// Preview must not write the artifact.
	if _, err := os.Stat(filepath.Join(root, ".vitepress")); !os.IsNotExist(err) {
		t.Error("preview should not create output directories")
	}
}

func TestHandleSidebarPreview_BadRoot(t *testing.T) {
	handler := handleSidebarPreview()
	_, _, err := handler(context.Background(), nil, SidebarOptions{
		DocsRoot: filepath.Join(t.TempDir(), "missing"),
	})
	if err == nil {
		t.Fatal("expected error for missing docs root")
	}
}

func TestHandleSidebarGenerate(t *testing.T) {
	root := writeDocs(t, "intro.md", "guide/setup.md")
	out := filepath.Join(root, ".vitepress", "sidebar-auto.ts")

	handler := handleSidebarGenerate()
	_, result, err := handler(context.Background(), nil, SidebarOptions{
		DocsRoot:   root,
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	if result.Groups != 2 || result.Items != 2 {
		t.Errorf("result = %+v, want 2 groups / 2 items", result)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("test")
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
}
