package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docwright/docwright/internal/git"
	"github.com/docwright/docwright/internal/sidebar"
)

// SidebarOptions are the shared inputs for the sidebar tools. Empty fields
// fall back to the standard VitePress layout defaults.
type SidebarOptions struct {
	DocsRoot       string   `json:"docs_root,omitempty"       jsonschema:"directory scanned for markdown files (default docs)"`
	OutputPath     string   `json:"output_path,omitempty"     jsonschema:"path of the generated artifact (default docs/.vitepress/sidebar-auto.ts)"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" jsonschema:"glob patterns excluded from the scan"`
	NoSort         bool     `json:"no_sort,omitempty"         jsonschema:"disable numeric-prefix ordering within groups"`
}

// toConfig merges the options over the default configuration.
func (o SidebarOptions) toConfig() sidebar.Config {
	cfg := sidebar.DefaultConfig()
	if o.DocsRoot != "" {
		cfg.DocsRoot = o.DocsRoot
	}
	if o.OutputPath != "" {
		cfg.OutputPath = o.OutputPath
	}
	if len(o.IgnorePatterns) > 0 {
		cfg.IgnorePatterns = o.IgnorePatterns
	}
	cfg.SortByPrefix = !o.NoSort
	return cfg
}

// --- sidebar_preview tool ---

// PreviewOutput is the output for the sidebar_preview tool.
type PreviewOutput struct {
	Groups   []sidebar.Group `json:"groups"             jsonschema:"ordered sidebar structure"`
	Warnings []string        `json:"warnings,omitempty" jsonschema:"non-fatal warnings from the scan"`
}

func handleSidebarPreview() mcp.ToolHandlerFor[SidebarOptions, PreviewOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SidebarOptions) (*mcp.CallToolResult, PreviewOutput, error) {
		groups, warnings, err := sidebar.Build(input.toConfig())
		if err != nil {
			return nil, PreviewOutput{}, fmt.Errorf("building sidebar: %w", err)
		}
		return nil, PreviewOutput{Groups: groups, Warnings: warnings}, nil
	}
}

// --- sidebar_generate tool ---

// GenerateOutput is the output for the sidebar_generate tool.
type GenerateOutput struct {
	OutputPath string   `json:"output_path"        jsonschema:"path of the written artifact"`
	Groups     int      `json:"groups"             jsonschema:"number of navigation groups"`
	Items      int      `json:"items"              jsonschema:"total number of items"`
	Warnings   []string `json:"warnings,omitempty" jsonschema:"non-fatal warnings from the scan"`
}

func handleSidebarGenerate() mcp.ToolHandlerFor[SidebarOptions, GenerateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SidebarOptions) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := sidebar.Generate(input.toConfig())
		if err != nil {
			return nil, GenerateOutput{}, fmt.Errorf("generating sidebar: %w", err)
		}
		return nil, GenerateOutput{
			OutputPath: result.OutputPath,
			Groups:     result.Groups,
			Items:      result.Items,
			Warnings:   result.Warnings,
		}, nil
	}
}

// --- status tool ---

// StatusInput is the input for the status tool.
type StatusInput struct {
	DocsRoot string `json:"docs_root,omitempty" jsonschema:"directory scanned for markdown files (default docs)"`
}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Repo        string `json:"repo,omitempty"   jsonschema:"repository name"`
	Branch      string `json:"branch,omitempty" jsonschema:"current branch"`
	StagedFiles int    `json:"staged_files"     jsonschema:"number of files staged in the index"`
	DocGroups   int    `json:"doc_groups"       jsonschema:"number of sidebar groups the docs tree would produce"`
	DocItems    int    `json:"doc_items"        jsonschema:"number of sidebar items the docs tree would produce"`
}

func handleStatus() mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		var out StatusOutput

		// Repo info is best-effort: the docs tree may live outside a repo.
		if name, err := git.RepoName(); err == nil {
			out.Repo = name
		}
		if branch, err := git.CurrentBranch(); err == nil {
			out.Branch = branch
		}
		if staged, err := git.StagedFiles(); err == nil {
			out.StagedFiles = len(staged)
		}

		opts := SidebarOptions{DocsRoot: input.DocsRoot}
		groups, _, err := sidebar.Build(opts.toConfig())
		if err == nil {
			out.DocGroups = len(groups)
			for _, group := range groups {
				out.DocItems += len(group.Items)
			}
		}

		return nil, out, nil
	}
}
