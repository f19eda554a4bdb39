package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dirqc/dirqc/internal/adapters/outbound/fsprobe"
	"github.com/dirqc/dirqc/internal/adapters/outbound/gitinfo"
	"github.com/dirqc/dirqc/internal/adapters/outbound/history"
	"github.com/dirqc/dirqc/internal/application"
	"github.com/dirqc/dirqc/internal/domain"
)

// registerTools registers all dirqc MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. dirqc_validate
	s.AddTool(
		mcplib.NewTool("dirqc_validate",
			mcplib.WithDescription("Validate a delivery directory against the QC structural contract. Returns the full validation result as JSON."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Base directory to validate"),
			),
			mcplib.WithString("test_type",
				mcplib.Description("Test type: SB for the extended rule set, anything else for the basic set"),
			),
		),
		handleValidate(),
	)

	// 2. dirqc_expected
	s.AddTool(
		mcplib.NewTool("dirqc_expected",
			mcplib.WithDescription("Returns the expected directory structure and required files for a test type"),
			mcplib.WithString("test_type",
				mcplib.Description("Test type to describe (default SB)"),
			),
		),
		handleExpected(),
	)

	// 3. dirqc_history
	s.AddTool(
		mcplib.NewTool("dirqc_history",
			mcplib.WithDescription("Returns the recorded QC runs for a delivery directory"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Base directory whose history to list"),
			),
		),
		handleHistory(),
	)
}

func newService() *application.QCService {
	return application.NewQCService(fsprobe.New(), history.New(), gitinfo.New())
}

func handleValidate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		basePath, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		testType, _ := request.GetArguments()["test_type"].(string)

		result, err := newService().Run(basePath, testType)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleExpected() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		testType, _ := request.GetArguments()["test_type"].(string)
		if testType == "" {
			testType = string(domain.TestTypeSB)
		}
		return jsonResult(domain.DescribeExpected(domain.ParseTestType(testType)))
	}
}

func handleHistory() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		basePath, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		entries, err := newService().History(basePath)
		if err != nil {
			return errorResult(fmt.Sprintf("history failed: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v as indented JSON tool output.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool-level error result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
