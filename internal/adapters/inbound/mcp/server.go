package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDirQCMCPServer creates an MCP server with the dirqc tools registered.
// Tools take the base directory per call, so one server instance can QC any
// number of delivery directories.
func NewDirQCMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"dirqc",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	return s
}
