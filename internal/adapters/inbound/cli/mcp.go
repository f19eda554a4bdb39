package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/dirqc/dirqc/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dirqc MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dirqc MCP server (stdio)",
		Long:  "Start the dirqc MCP server using stdio transport, exposing directory QC validation to ingestion pipelines and AI assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewDirQCMCPServer()
			return server.ServeStdio(s)
		},
	}
}
