// Package tools groups the deterministic toolsets the agents call and the
// MCP plumbing that exposes them.
//
// Sub-packages:
//   - [github.com/germanamz/relay/pkg/tools/toolbox] — Tool type and ToolBox registry for registering, listing, and calling tools
//   - [github.com/germanamz/relay/pkg/tools/mathtool] — basic arithmetic, unit conversion, and percentage tools
//   - [github.com/germanamz/relay/pkg/tools/advmathtool] — advanced math evaluator with named functions and custom operations
//   - [github.com/germanamz/relay/pkg/tools/weathertool] — canned and synthesized weather lookups
//   - [github.com/germanamz/relay/pkg/tools/mcpserver] — serves toolboxes to MCP clients over stdio
//   - [github.com/germanamz/relay/pkg/tools/mcpclient] — mirrors an external MCP server's tools as local toolbox.Tool values
//
// The toolbox sub-package is the foundation layer; the toolsets and both MCP
// wrappers depend on it but not on each other.
package tools
