package beehiiv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListPublications(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data": [{"id": "pub_1", "name": "Daily Brew"}, {"id": "pub_2", "name": "Weekly Digest"}]}`))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	pubs, err := c.ListPublications(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/publications", gotPath)
	require.Len(t, pubs, 2)
	assert.Equal(t, "Daily Brew", pubs[0].(map[string]any)["name"])
}

func TestClient_GetPublication(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data": {"id": "pub_1", "name": "Daily Brew", "stats": {"active_subscriptions": 12000}}}`))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	pub, err := c.GetPublication(context.Background(), "pub_1")
	require.NoError(t, err)

	assert.Equal(t, "/publications/pub_1", gotPath)
	assert.Equal(t, "Daily Brew", pub["name"])
}

func TestClient_GetPublication_EmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	}))
	defer srv.Close()

	c := New("key", WithBaseURL(srv.URL))
	pub, err := c.GetPublication(context.Background(), "pub_1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, pub)
}
