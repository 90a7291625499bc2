package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolListSegments_success(t *testing.T) {
	d := testDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publications/pub_1/segments", r.URL.Path)
		fmt.Fprint(w, `{"data": [{"id": "seg_1"}, {"id": "seg_2"}]}`)
	})

	res, _, err := ToolListSegments(d)(context.Background(), nil,
		ListSegmentsInput{PublicationID: "pub_1"})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var decoded []any
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &decoded))
	assert.Len(t, decoded, 2)
}

func TestToolGetSegmentDetails_path(t *testing.T) {
	d := testDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publications/pub_1/segments/seg_9", r.URL.Path)
		fmt.Fprint(w, `{"data": {"id": "seg_9", "name": "Active readers"}}`)
	})

	res, _, err := ToolGetSegmentDetails(d)(context.Background(), nil, GetSegmentDetailsInput{
		PublicationID: "pub_1",
		SegmentID:     "seg_9",
	})
	require.NoError(t, err)
	assert.Contains(t, textContent(t, res), `"name": "Active readers"`)
}

func TestToolGetSegmentDetails_forbidden(t *testing.T) {
	d := testDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"errors": [{"message": "Forbidden"}]}`)
	})

	res, _, err := ToolGetSegmentDetails(d)(context.Background(), nil, GetSegmentDetailsInput{
		PublicationID: "pub_1",
		SegmentID:     "seg_9",
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textContent(t, res), "access forbidden")
}
