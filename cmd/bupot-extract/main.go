package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pajakio/bupot-extract/internal/config"
	"github.com/pajakio/bupot-extract/internal/extract"
	"github.com/pajakio/bupot-extract/internal/logging"
	"github.com/pajakio/bupot-extract/internal/mcp"
	"github.com/pajakio/bupot-extract/internal/server"
	"go.uber.org/zap"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// runServerMode runs the HTTP API with signal handling for graceful shutdown
func runServerMode(cfg *config.Config, service *extract.Service, logger *zap.Logger) {
	srv := server.NewServer(service, cfg, logger)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.Start()
	}()

	select {
	case sig := <-signalCh:
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
			os.Exit(1)
		}
		<-serverErrCh

	case err := <-serverErrCh:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("Server stopped successfully")
}

// runStdioMode runs the MCP server over stdio
func runStdioMode(cfg *config.Config, service *extract.Service, logger *zap.Logger) {
	srv, err := mcp.NewServer(cfg, service, logger)
	if err != nil {
		logger.Fatal("Failed to create MCP server", zap.Error(err))
	}

	// In stdio mode, the parent process controls our lifecycle
	if err := srv.Run(context.Background()); err != nil {
		logger.Error("Server error", zap.Error(err))
		os.Exit(1)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsDebug() {
		logger.Debug("Starting with configuration", zap.String("config", cfg.String()))
	}

	service := extract.NewService(cfg.MaxFileSize)

	if cfg.IsServerMode() {
		runServerMode(cfg, service, logger)
	} else {
		runStdioMode(cfg, service, logger)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("bupot-extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
