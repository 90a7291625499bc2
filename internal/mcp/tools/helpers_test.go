package tools

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usebeehiiv/beehiiv-mcp/internal/config"
)

// testDeps builds Deps against a stub API server.
func testDeps(t *testing.T, handler http.HandlerFunc) *Deps {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewDeps(&config.Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		HTTPTimeout: 5 * time.Second,
	})
}

// textContent extracts the single text payload from a tool result.
func textContent(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestFailureResult(t *testing.T) {
	res := FailureResult("something broke")
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: something broke", textContent(t, res))
}

func TestJSONToolResult_prettyPrints(t *testing.T) {
	res := JSONToolResult(map[string]any{"id": "pub_1", "name": "Daily"})
	assert.False(t, res.IsError)

	text := textContent(t, res)
	assert.True(t, strings.HasPrefix(text, "{\n"))
	assert.Contains(t, text, `  "id": "pub_1"`)
	assert.Contains(t, text, `  "name": "Daily"`)
}

func TestJSONToolResult_marshalFailure(t *testing.T) {
	res := JSONToolResult(func() {})
	assert.True(t, res.IsError)
	assert.True(t, strings.HasPrefix(textContent(t, res), "Error: encoding response:"))
}

func TestDefaultString(t *testing.T) {
	assert.Equal(t, "all", defaultString("", "all"))
	assert.Equal(t, "draft", defaultString("draft", "all"))
}
