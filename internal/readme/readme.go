// Package readme embeds the project README for the readme command and the
// get_readme MCP tool.
package readme

import _ "embed"

//go:embed README.md
var Content string
