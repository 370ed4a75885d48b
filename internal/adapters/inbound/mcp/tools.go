package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	cacheAdapter "github.com/lumen-lang/lumenfmt/internal/adapters/outbound/cache"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/manifest"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/pipeline"
	"github.com/lumen-lang/lumenfmt/internal/adapters/outbound/resolver"
	"github.com/lumen-lang/lumenfmt/internal/application"
	"github.com/lumen-lang/lumenfmt/internal/domain"
)

// registerTools registers all lumenfmt MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. lumenfmt_format_source
	s.AddTool(
		mcplib.NewTool("lumenfmt_format_source",
			mcplib.WithDescription("Format a Lumen source string and return the canonical rendering"),
			mcplib.WithString("source",
				mcplib.Required(),
				mcplib.Description("Lumen source code to format"),
			),
			mcplib.WithString("project_type",
				mcplib.Description("Parse context: application or package (default: application)"),
			),
		),
		handleFormatSource(),
	)

	// 2. lumenfmt_check
	s.AddTool(
		mcplib.NewTool("lumenfmt_check",
			mcplib.WithDescription("Check every project source file for canonical formatting. Returns a per-file JSON report; invalid files and parse errors fail the check."),
		),
		handleCheck(projectPath),
	)

	// 3. lumenfmt_format_project
	s.AddTool(
		mcplib.NewTool("lumenfmt_format_project",
			mcplib.WithDescription("Rewrite every project source file into the canonical style. The tool call itself is the consent; no further confirmation is asked."),
		),
		handleFormatProject(projectPath),
	)
}

func handleFormatSource() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		source, err := request.RequireString("source")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		ptype := domain.ProjectApplication
		if request.GetString("project_type", "application") == "package" {
			ptype = domain.ProjectPackage
		}

		out, err := pipeline.New().Format(ptype, []byte(source))
		if err != nil {
			return errorResult(fmt.Sprintf("parse error: %v", err)), nil
		}
		return mcplib.NewToolResultText(string(out)), nil
	}
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		inputs, err := resolver.New(manifest.New(), projectPath).Resolve(nil, false)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving inputs: %v", err)), nil
		}

		svc := application.NewCheckService(pipeline.New(), nullReporter{}, cacheAdapter.New(), projectPath)
		report, runErr := svc.Run(inputs, application.CheckOptions{})
		if report == nil {
			return errorResult(fmt.Sprintf("check failed: %v", runErr)), nil
		}
		return jsonResult(buildFileReport(report, runErr == nil))
	}
}

func handleFormatProject(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		inputs, err := resolver.New(manifest.New(), projectPath).Resolve(nil, false)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving inputs: %v", err)), nil
		}

		svc := application.NewFormatService(pipeline.New(), nil, nullReporter{})
		report, runErr := svc.Run(inputs, application.FormatOptions{SkipConfirm: true})
		if report == nil {
			return errorResult(fmt.Sprintf("format failed: %v", runErr)), nil
		}
		return jsonResult(buildFileReport(report, runErr == nil))
	}
}

// fileReport is the JSON shape shared by the check and format tools.
type fileReport struct {
	Status string       `json:"status"`
	Files  []fileStatus `json:"files"`
}

type fileStatus struct {
	Path   string `json:"path"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func buildFileReport(report *domain.RunReport, passed bool) fileReport {
	out := fileReport{Status: "pass"}
	if !passed {
		out.Status = "fail"
	}
	for _, res := range report.Results {
		fs := fileStatus{Path: res.DisplayPath()}
		switch {
		case res.Failed():
			fs.Status = "parse_error"
			fs.Error = res.Err.Error()
		case res.Status == domain.Changed:
			fs.Status = "changed"
		default:
			fs.Status = "unchanged"
		}
		out.Files = append(out.Files, fs)
	}
	return out
}

// nullReporter discards per-file status lines; MCP clients read the JSON
// report instead.
type nullReporter struct{}

func (nullReporter) FileResult(domain.FormatResult) {}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("marshaling result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
