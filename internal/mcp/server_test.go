package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pajakio/bupot-extract/internal/config"
	"github.com/pajakio/bupot-extract/internal/extract"
)

func testConfig() *config.Config {
	return &config.Config{
		Mode:        "stdio",
		Version:     "1.0.0",
		ServerName:  "test-server",
		LogLevel:    "info",
		MaxFileSize: 1024 * 1024,
	}
}

func TestNewServer(t *testing.T) {
	cfg := testConfig()
	service := extract.NewService(cfg.MaxFileSize)

	t.Run("valid config", func(t *testing.T) {
		srv, err := NewServer(cfg, service, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if srv == nil {
			t.Fatal("server should not be nil")
		}
		if srv.config != cfg {
			t.Error("server config not set correctly")
		}
		if srv.service != service {
			t.Error("server service not set correctly")
		}
		if srv.mcpServer == nil {
			t.Error("mcpServer should be initialized")
		}
	})

	t.Run("nil service", func(t *testing.T) {
		if _, err := NewServer(cfg, nil, nil); err == nil {
			t.Error("expected error for nil service")
		}
	})
}

func TestServer_HandleExtractText(t *testing.T) {
	cfg := testConfig()
	srv, err := NewServer(cfg, extract.NewService(cfg.MaxFileSize), nil)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"text": "FORMULIR BPBS\nBukti Pemotongan",
			},
		},
	}

	result, err := srv.handleExtractText(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Detected format: B") {
		t.Errorf("expected format B in result, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Record:") {
		t.Errorf("expected record JSON in result, got: %s", resultText)
	}
}

func TestServer_HandleExtractTextUnrecognized(t *testing.T) {
	cfg := testConfig()
	srv, err := NewServer(cfg, extract.NewService(cfg.MaxFileSize), nil)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"text": "some unrelated document",
			},
		},
	}

	result, err := srv.handleExtractText(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Detected format: U") {
		t.Errorf("expected format U in result, got: %s", resultText)
	}
	if !strings.Contains(resultText, "does not match any known certificate layout") {
		t.Errorf("expected unrecognized note in result, got: %s", resultText)
	}
}

func TestServer_HandleValidateFile(t *testing.T) {
	cfg := testConfig()
	srv, err := NewServer(cfg, extract.NewService(cfg.MaxFileSize), nil)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": "/nonexistent/certificate.pdf",
			},
		},
	}

	result, err := srv.handleValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "PDF validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}
}

func TestServer_HandleServerInfo(t *testing.T) {
	cfg := testConfig()
	srv, err := NewServer(cfg, extract.NewService(cfg.MaxFileSize), nil)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	result, err := srv.handleServerInfo(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	resultText := extractTextFromResult(result)
	for _, tool := range []string{"bupot_extract_file", "bupot_extract_text", "bupot_validate_file", "bupot_server_info"} {
		if !strings.Contains(resultText, tool) {
			t.Errorf("server info should mention tool %s, got: %s", tool, resultText)
		}
	}
	if !strings.Contains(resultText, "test-server v1.0.0") {
		t.Errorf("server info should mention name and version, got: %s", resultText)
	}
}

func TestServer_InvalidArguments(t *testing.T) {
	cfg := testConfig()
	srv, err := NewServer(cfg, extract.NewService(cfg.MaxFileSize), nil)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	emptyRequest := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	handlers := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		{"ExtractFile", srv.handleExtractFile},
		{"ExtractText", srv.handleExtractText},
		{"ValidateFile", srv.handleValidateFile},
	}

	for _, h := range handlers {
		t.Run(h.name, func(t *testing.T) {
			result, err := h.handler(context.Background(), emptyRequest)
			if err != nil {
				t.Errorf("handler should not return error, got: %v", err)
			}
			if result == nil {
				t.Fatal("result should not be nil")
			}
			if !result.IsError {
				t.Error("expected an error result for missing arguments")
			}
		})
	}
}

// Helper function to extract text from a CallToolResult
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}
