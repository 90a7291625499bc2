package beehiiv

import (
	"context"
	"fmt"
	"net/url"
)

// ListSegments retrieves all audience segments for a publication.
func (c *Client) ListSegments(ctx context.Context, publicationID string) ([]any, error) {
	path := "/publications/" + url.PathEscape(publicationID) + "/segments"
	var resp map[string]any
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing segments for publication %q: %w", publicationID, err)
	}
	return dataList(resp), nil
}

// GetSegment retrieves a specific segment by ID.
func (c *Client) GetSegment(ctx context.Context, publicationID, segmentID string) (map[string]any, error) {
	path := "/publications/" + url.PathEscape(publicationID) + "/segments/" + url.PathEscape(segmentID)
	var resp map[string]any
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("getting segment %q: %w", segmentID, err)
	}
	return dataObject(resp), nil
}
