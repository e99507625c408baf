// Package config loads memos-mcp configuration from the environment and an
// optional HuJSON config file at ~/.memos-mcp/config.json. Environment
// variables win over the file; a .env file in the working directory is read
// first.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
)

// Config holds all application configuration.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
}

// jsonConfig is an intermediate struct for JSON unmarshalling. A pointer for
// timeout distinguishes "missing" (nil) from "zero".
type jsonConfig struct {
	BaseURL    string `json:"base_url"`
	APIKey     string `json:"api_key"`
	TimeoutSec *int   `json:"timeout_sec"`
	LogLevel   string `json:"log_level"`
	LogFormat  string `json:"log_format"`
}

// Package-level variables to allow overriding in tests.
var (
	userHomeDir = os.UserHomeDir
	readFile    = os.ReadFile
	dotenvLoad  = godotenv.Load
	getenv      = os.Getenv
)

// Load reads configuration. The config file is optional; the environment
// (MEMOS_BASE_URL, MEMOS_API_KEY, MEMOS_TIMEOUT_SEC, MEMOS_LOG_LEVEL,
// MEMOS_LOG_FORMAT) overrides it. Missing values are left for the caller to
// validate, since flags may still fill them in.
func Load() (*Config, error) {
	// Best effort; most deployments configure via the MCP host's env block.
	_ = dotenvLoad()

	var jc jsonConfig
	if data, err := configFileData(); err == nil {
		standardJSON, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if err := json.Unmarshal(standardJSON, &jc); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg := &Config{
		BaseURL:   stringDefault(getenv("MEMOS_BASE_URL"), jc.BaseURL),
		APIKey:    stringDefault(getenv("MEMOS_API_KEY"), jc.APIKey),
		Timeout:   time.Duration(intPtrDefault(jc.TimeoutSec, 30)) * time.Second,
		LogLevel:  stringDefault(getenv("MEMOS_LOG_LEVEL"), stringDefault(jc.LogLevel, "info")),
		LogFormat: stringDefault(getenv("MEMOS_LOG_FORMAT"), stringDefault(jc.LogFormat, "text")),
	}

	if v := getenv("MEMOS_TIMEOUT_SEC"); v != "" {
		sec, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing MEMOS_TIMEOUT_SEC: %w", err)
		}
		cfg.Timeout = time.Duration(sec) * time.Second
	}

	return cfg, nil
}

func configFileData() ([]byte, error) {
	home, err := userHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return readFile(filepath.Join(home, ".memos-mcp", "config.json"))
}

func stringDefault(val, def string) string {
	if val != "" {
		return val
	}
	return def
}

func intPtrDefault(val *int, def int) int {
	if val != nil {
		return *val
	}
	return def
}
