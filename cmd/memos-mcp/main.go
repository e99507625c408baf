package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/kinmeic/memos-mcp/internal/config"
	"github.com/kinmeic/memos-mcp/internal/readme"
)

func init() {
	cobra.EnablePrefixMatching = true
	version = resolveVersion(version)
}

// resolveVersion uses debug.ReadBuildInfo to replace "dev" with the actual
// module version when installed via `go install`.
var resolveVersion = func(v string) string {
	if v != "dev" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return v
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var osExit = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memos-mcp",
		Short: "MCP server for the Memos note-taking service",
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newReadmeCmd())
	root.AddCommand(newUpdateCmd())
	root.SetHelpTemplate(helpTemplate)
	return root
}

const helpTemplate = `memos-mcp - MCP server exposing the Memos API as tools and resources

Usage:
  memos-mcp [command]

Available Commands:
  serve                    Run the MCP server over stdio (alias: s)
    --base-url             Memos instance base URL [env: MEMOS_BASE_URL]
    --api-key              Memos access token [env: MEMOS_API_KEY]
    --log                  Log file path (default: stderr)
    --log-level            Log level: debug, info, warn, error
    --log-format           Log format: text, json
  version                  Print version information (alias: v)
  readme                   Print the README documentation (alias: r)
  update                   Update memos-mcp to the latest version (alias: u)

Use "memos-mcp [command] --help" for more information about a command.
`

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("memos-mcp %s\n", version)
			if commit != "none" {
				fmt.Printf("  commit: %s\n", commit)
			}
			if date != "unknown" {
				fmt.Printf("  built:  %s\n", date)
			}
		},
	}
}

func newReadmeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "readme",
		Aliases: []string{"r"},
		Short:   "Print the README documentation",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Print(readme.Content)
		},
	}
}

// --- Shared testable vars ---

var configLoad = config.Load
