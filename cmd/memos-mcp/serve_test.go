package main

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kinmeic/memos-mcp/internal/config"
	"github.com/kinmeic/memos-mcp/internal/mcpserver"
	"github.com/kinmeic/memos-mcp/internal/memos"
)

func testConfig() *config.Config {
	return &config.Config{
		BaseURL:   "http://memos.local",
		APIKey:    "test-key",
		Timeout:   30 * time.Second,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func (s *MainSuite) TestNewServeCmd() {
	cmd := newServeCmd()
	require.Equal(s.T(), "serve", cmd.Use)
	require.Contains(s.T(), cmd.Aliases, "s")
	require.NotNil(s.T(), cmd.Flags().Lookup("base-url"))
	require.NotNil(s.T(), cmd.Flags().Lookup("api-key"))
	require.NotNil(s.T(), cmd.Flags().Lookup("log"))
}

func (s *MainSuite) TestRunServe() {
	configLoad = func() (*config.Config, error) { return testConfig(), nil }

	called := false
	newMCPServer = func(client *memos.Client, ver string, logger *slog.Logger) *mcpserver.Server {
		require.Equal(s.T(), "http://memos.local", client.BaseURL())
		require.True(s.T(), client.HasAPIKey())
		called = true
		return mcpserver.New(client, ver, logger)
	}

	// The stdio transport hits EOF immediately under `go test`; we only
	// verify the wiring.
	_ = runServe("", "", "", "", "")
	require.True(s.T(), called)
}

func (s *MainSuite) TestRunServeFlagOverrides() {
	configLoad = func() (*config.Config, error) { return testConfig(), nil }

	newMCPServer = func(client *memos.Client, ver string, logger *slog.Logger) *mcpserver.Server {
		require.Equal(s.T(), "http://flag.local", client.BaseURL())
		return mcpserver.New(client, ver, logger)
	}

	_ = runServe("http://flag.local", "flag-key", "", "debug", "json")
}

func (s *MainSuite) TestRunServeMissingBaseURL() {
	configLoad = func() (*config.Config, error) { return &config.Config{}, nil }

	err := runServe("", "", "", "", "")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "base URL is required")
}

func (s *MainSuite) TestRunServeLogOpenError() {
	configLoad = func() (*config.Config, error) { return testConfig(), nil }

	err := runServe("", "", "/nonexistent/dir/memos-mcp.log", "", "")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "opening log file")
}

func (s *MainSuite) TestRunServeLogFile() {
	configLoad = func() (*config.Config, error) { return testConfig(), nil }
	newMCPServer = mcpserver.New

	logPath := filepath.Join(s.T().TempDir(), "memos-mcp.log")
	_ = runServe("", "", logPath, "", "")
}
