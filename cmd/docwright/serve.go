package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	docwrightmcp "github.com/docwright/docwright/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run docwright as a Model Context Protocol (MCP) server over stdio.

This exposes the sidebar generator and repo status as MCP tools that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf,
Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "docwright": {
        "command": "docwright",
        "args": ["serve"]
      }
    }
  }

Available tools: sidebar_preview, sidebar_generate, status`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := docwrightmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
