package beehiiv

import (
	"context"
	"fmt"
	"net/url"
)

// ListPublications retrieves all publications accessible with the API key.
func (c *Client) ListPublications(ctx context.Context) ([]any, error) {
	var resp map[string]any
	if err := c.get(ctx, "/publications", nil, &resp); err != nil {
		return nil, fmt.Errorf("listing publications: %w", err)
	}
	return dataList(resp), nil
}

// GetPublication retrieves a specific publication by ID.
func (c *Client) GetPublication(ctx context.Context, publicationID string) (map[string]any, error) {
	path := "/publications/" + url.PathEscape(publicationID)
	var resp map[string]any
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("getting publication %q: %w", publicationID, err)
	}
	return dataObject(resp), nil
}
