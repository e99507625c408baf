package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/kinmeic/memos-mcp/internal/logging"
	"github.com/kinmeic/memos-mcp/internal/memos"
	"github.com/kinmeic/memos-mcp/internal/mcpserver"
)

var newMCPServer = mcpserver.New

func newServeCmd() *cobra.Command {
	var baseURL, apiKey, logPath, logLevel, logFormat string

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Run the MCP server over stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(baseURL, apiKey, logPath, logLevel, logFormat)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Memos instance base URL (overrides MEMOS_BASE_URL)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Memos access token (overrides MEMOS_API_KEY)")
	cmd.Flags().StringVar(&logPath, "log", "", "Log file path (default: stderr)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	return cmd
}

func runServe(baseURL, apiKey, logPath, logLevel, logFormat string) error {
	cfg, err := configLoad()
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	if cfg.BaseURL == "" {
		return errors.New("memos base URL is required (set --base-url or MEMOS_BASE_URL)")
	}

	// Stdout carries the MCP protocol; logs go to stderr or a file.
	var logWriter io.Writer = os.Stderr
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logWriter = f
	}
	logger := logging.NewWithWriter(cfg.LogLevel, cfg.LogFormat, logWriter)

	client := memos.NewClient(cfg.BaseURL, cfg.APIKey, &http.Client{Timeout: cfg.Timeout}, logger)
	srv := newMCPServer(client, version, logger)
	return srv.Run(context.Background(), &mcp.StdioTransport{})
}
