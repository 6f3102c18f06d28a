// Package mcp provides a Model Context Protocol server for docwright.
// It exposes the sidebar pipeline as MCP tools that any MCP-capable agent
// can use to inspect or regenerate the documentation navigation.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all docwright tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docwright",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write files but are
// safe to repeat (the sidebar artifact is rebuilt from scratch each run).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all docwright tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sidebar_preview",
		Description: "Compute the documentation sidebar structure without writing it. Returns groups and items as JSON.",
		Annotations: readOnlyAnnotations(),
	}, handleSidebarPreview())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sidebar_generate",
		Description: "Generate the sidebar artifact from the docs directory and write it to disk, replacing any previous version.",
		Annotations: writeAnnotations(),
	}, handleSidebarGenerate())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show repository and documentation state: repo name, branch, staged file count, and docs statistics.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus())
}
