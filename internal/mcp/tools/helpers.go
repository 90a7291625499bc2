// Package tools contains the MCP tool implementations backed by the
// Beehiiv API.
package tools

import (
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorPrefix marks a failure payload. Tool calls never fail at the protocol
// level; the payload text carries the error instead.
const ErrorPrefix = "Error: "

// JSONToolResult builds a successful result whose single text content is the
// two-space-indented JSON rendering of v. Payloads are decoded JSON values,
// so marshaling cannot realistically fail; if it somehow does, the failure
// surfaces in-band like every other error.
func JSONToolResult(v any) *sdkmcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return FailureResult("encoding response: " + err.Error())
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(b)},
		},
	}
}

// FailureResult builds an in-band failure: the protocol call succeeds and
// the payload text carries the error behind ErrorPrefix.
func FailureResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: ErrorPrefix + msg},
		},
		IsError: true,
	}
}

// defaultString returns v, or fallback when v is empty. Handlers default
// missing optional arguments to the same values the schema declares, so a
// host that skips schema validation still gets correct behavior.
func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
