package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usebeehiiv/beehiiv-mcp/internal/config"
)

func TestToolListPublications_success(t *testing.T) {
	d := testDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publications", r.URL.Path)
		fmt.Fprint(w, `{"data": [{"id": "pub_1", "name": "Daily"}]}`)
	})

	res, _, err := ToolListPublications(d)(context.Background(), nil, ListPublicationsInput{})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := textContent(t, res)
	var decoded []any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	require.Len(t, decoded, 1)
	assert.Contains(t, text, "\n  ")
}

func TestToolListPublications_unauthorized(t *testing.T) {
	d := testDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"errors": [{"message": "Invalid API key"}]}`)
	})

	res, _, err := ToolListPublications(d)(context.Background(), nil, ListPublicationsInput{})
	require.NoError(t, err) // the call itself must not fail

	assert.True(t, res.IsError)
	text := textContent(t, res)
	assert.True(t, strings.HasPrefix(text, "Error: "))
	assert.Contains(t, text, "invalid Beehiiv API key")
}

func TestToolListPublications_missingCredential(t *testing.T) {
	d := NewDeps(&config.Config{BaseURL: "http://127.0.0.1:0"})

	res, _, err := ToolListPublications(d)(context.Background(), nil, ListPublicationsInput{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: BEEHIIV_API_KEY environment variable is required", textContent(t, res))
}

func TestToolGetPublicationDetails_pathAndPayload(t *testing.T) {
	d := testDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publications/pub_1", r.URL.Path)
		fmt.Fprint(w, `{"data": {"id": "pub_1", "name": "Daily"}}`)
	})

	res, _, err := ToolGetPublicationDetails(d)(context.Background(), nil,
		GetPublicationDetailsInput{PublicationID: "pub_1"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, textContent(t, res), `"name": "Daily"`)
}

func TestDeps_clientConstructedOnce(t *testing.T) {
	d := NewDeps(&config.Config{APIKey: "k", BaseURL: "http://localhost:1"})

	c1, err := d.APIClient()
	require.NoError(t, err)
	c2, err := d.APIClient()
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}
