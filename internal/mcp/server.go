// Package mcp exposes certificate extraction as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pajakio/bupot-extract/internal/config"
	"github.com/pajakio/bupot-extract/internal/extract"
	"go.uber.org/zap"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *extract.Service
	logger    *zap.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *extract.Service, logger *zap.Logger) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:    cfg,
		service:   service,
		logger:    logger,
		mcpServer: mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	extractFileTool := mcp.NewTool(
		"bupot_extract_file",
		mcp.WithDescription("Extract withholding-tax certificate fields from a PDF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the certificate PDF"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	extractTextTool := mcp.NewTool(
		"bupot_extract_text",
		mcp.WithDescription("Extract withholding-tax certificate fields from already-linearized text"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Linearized certificate text, one row per line"),
		),
	)
	s.mcpServer.AddTool(extractTextTool, s.handleExtractText)

	validateFileTool := mcp.NewTool(
		"bupot_validate_file",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	serverInfoTool := mcp.NewTool(
		"bupot_server_info",
		mcp.WithDescription("Get server information, available tools, and usage guidance"),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// Handler functions
func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ExtractFile(extract.ExtractFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("extract file tool",
		zap.String("path", path),
		zap.String("format", result.Format))
	return mcp.NewToolResultText(s.formatExtractResult(result)), nil
}

func (s *Server) handleExtractText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ExtractText(extract.ExtractTextRequest{Text: text})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("extract text tool", zap.String("format", result.Format))
	return mcp.NewToolResultText(s.formatExtractResult(result)), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateFile(extract.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := fmt.Sprintf("%s v%s - Server Information\n", s.config.ServerName, s.config.Version)
	text += fmt.Sprintf("Max File Size: %d MB\n\n", s.config.MaxFileSize/(1024*1024))
	text += "Available Tools:\n"
	text += "\n• bupot_extract_file\n"
	text += "  Extract certificate fields from a PDF on disk. Parameters: path (required)\n"
	text += "\n• bupot_extract_text\n"
	text += "  Extract certificate fields from linearized text. Parameters: text (required)\n"
	text += "\n• bupot_validate_file\n"
	text += "  Check whether a file is a readable PDF. Parameters: path (required)\n"
	text += "\n• bupot_server_info\n"
	text += "  This summary. No parameters.\n"
	text += "\nFormats: A, B and C are the recognized certificate layouts; Z means empty input, U unrecognized.\n"

	return mcp.NewToolResultText(text), nil
}

// formatExtractResult renders an extraction outcome: a short human-readable
// header followed by the record as JSON.
func (s *Server) formatExtractResult(result *extract.ExtractResult) string {
	text := fmt.Sprintf("Detected format: %s\n", result.Format)
	if result.Path != "" {
		text += fmt.Sprintf("File: %s\n", result.Path)
	}
	if result.Pages > 0 {
		text += fmt.Sprintf("Pages: %d\n", result.Pages)
	}
	if result.Size > 0 {
		text += fmt.Sprintf("Size: %d bytes\n", result.Size)
	}

	switch result.Format {
	case "U":
		text += "\nNote: the document does not match any known certificate layout; all fields are empty.\n"
	case "Z":
		text += "\nNote: the document contains no extractable text; all fields are empty.\n"
	}

	encoded, err := json.MarshalIndent(result.Record, "", "  ")
	if err != nil {
		return text + fmt.Sprintf("\nFailed to encode record: %v\n", err)
	}
	text += "\nRecord:\n"
	text += string(encoded)
	text += "\n"
	return text
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting MCP server in stdio mode",
		zap.String("name", s.config.ServerName),
		zap.String("version", s.config.Version))

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
