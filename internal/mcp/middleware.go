package mcp

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usebeehiiv/beehiiv-mcp/internal/mcp/tools"
)

// LoggingMiddleware returns middleware that logs all incoming method calls.
// Receipt and completion share a call_id so slow calls can be correlated.
func LoggingMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()
			callID := uuid.NewString()

			attrs := []slog.Attr{
				slog.String("call_id", callID),
				slog.String("method", method),
			}
			if ctr, ok := req.(*sdkmcp.CallToolRequest); ok && ctr.Params != nil {
				attrs = append(attrs, slog.String("tool", ctr.Params.Name))
			}
			slog.LogAttrs(ctx, slog.LevelDebug, "method call received", attrs...)

			result, err := next(ctx, method, req)

			duration := time.Since(start)
			attrs = append(attrs, slog.Int64("duration_ms", duration.Milliseconds()))

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				slog.LogAttrs(ctx, slog.LevelError, "method call failed", attrs...)
			} else {
				slog.LogAttrs(ctx, slog.LevelInfo, "method call completed", attrs...)
			}

			return result, err
		}
	}
}

// CallBoundaryMiddleware returns middleware that keeps every tools/call
// inside the protocol envelope: unknown tool names and errors escaping a
// handler come back as in-band failure payloads, never protocol errors.
func CallBoundaryMiddleware(known map[string]bool) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if method != "tools/call" {
				return next(ctx, method, req)
			}

			if ctr, ok := req.(*sdkmcp.CallToolRequest); ok && ctr.Params != nil {
				if !known[ctr.Params.Name] {
					slog.Warn("unknown tool requested",
						slog.String("tool", ctr.Params.Name),
					)
					return tools.FailureResult("Unknown tool: " + ctr.Params.Name), nil
				}
			}

			result, err := next(ctx, method, req)
			if err != nil {
				return tools.FailureResult(err.Error()), nil
			}
			if ctr, ok := result.(*sdkmcp.CallToolResult); ok {
				ensureErrorPrefix(ctr)
			}
			return result, nil
		}
	}
}

// ensureErrorPrefix rewrites an error result to carry the failure marker
// when a lower layer produced one without it. The SDK reports argument
// decode and schema validation failures this way.
func ensureErrorPrefix(res *sdkmcp.CallToolResult) {
	if res == nil || !res.IsError {
		return
	}
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			if !strings.HasPrefix(tc.Text, tools.ErrorPrefix) {
				tc.Text = tools.ErrorPrefix + tc.Text
			}
			return
		}
	}
	res.Content = append(res.Content, &sdkmcp.TextContent{
		Text: tools.ErrorPrefix + "tool call failed",
	})
}
