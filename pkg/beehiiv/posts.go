package beehiiv

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Post listing bounds. The API rejects pages larger than MaxPostLimit.
const (
	DefaultPostLimit = 10
	MaxPostLimit     = 100
)

// ListPostsOptions contains filters, ordering, and expansion for ListPosts.
// Zero values fall back to the API defaults documented on each field.
type ListPostsOptions struct {
	// Limit is the page size, clamped to [1, MaxPostLimit]. Default 10.
	Limit int
	// Page is the 1-based page number. Default 1.
	Page int
	// Status filters by post status (StatusDraft etc.). Default StatusAll.
	Status string
	// Audience filters by audience type. Default AudienceAll.
	Audience string
	// Platform filters by delivery platform. Default PlatformAll.
	Platform string
	// OrderBy is the sort field (OrderByCreated etc.). Default OrderByCreated.
	OrderBy string
	// Direction is the sort direction. Default DirectionDesc.
	Direction string
	// Expand requests nested data (ExpandStats etc.).
	Expand []string
}

// withDefaults fills unset options with the API defaults.
func (o ListPostsOptions) withDefaults() ListPostsOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultPostLimit
	}
	if o.Limit > MaxPostLimit {
		o.Limit = MaxPostLimit
	}
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Status == "" {
		o.Status = StatusAll
	}
	if o.Audience == "" {
		o.Audience = AudienceAll
	}
	if o.Platform == "" {
		o.Platform = PlatformAll
	}
	if o.OrderBy == "" {
		o.OrderBy = OrderByCreated
	}
	if o.Direction == "" {
		o.Direction = DirectionDesc
	}
	return o
}

// ListPosts retrieves a page of posts for a publication. Unlike the other
// methods it returns the whole response envelope, so callers keep the
// pagination metadata (page, total_pages, total_results) next to the data.
//
// The endpoint does not reliably honor order_by, so the returned page's data
// array is re-sorted locally per SortPostsByDate before being returned.
func (c *Client) ListPosts(ctx context.Context, publicationID string, opts ListPostsOptions) (map[string]any, error) {
	opts = opts.withDefaults()

	query := url.Values{}
	query.Set("limit", strconv.Itoa(opts.Limit))
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("status", opts.Status)
	query.Set("audience", opts.Audience)
	query.Set("platform", opts.Platform)
	query.Set("order_by", opts.OrderBy)
	query.Set("direction", opts.Direction)
	for _, expand := range opts.Expand {
		query.Add("expand[]", expand)
	}

	path := "/publications/" + url.PathEscape(publicationID) + "/posts"
	var resp map[string]any
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, fmt.Errorf("listing posts for publication %q: %w", publicationID, err)
	}

	if data, ok := resp["data"].([]any); ok {
		resp["data"] = SortPostsByDate(data, opts.OrderBy, opts.Direction)
	}
	return resp, nil
}

// GetPost retrieves a specific post by ID. expand optionally requests
// nested data (ExpandStats etc.).
func (c *Client) GetPost(ctx context.Context, publicationID, postID string, expand []string) (map[string]any, error) {
	var query url.Values
	if len(expand) > 0 {
		query = make(url.Values)
		for _, e := range expand {
			query.Add("expand[]", e)
		}
	}

	path := "/publications/" + url.PathEscape(publicationID) + "/posts/" + url.PathEscape(postID)
	var resp map[string]any
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, fmt.Errorf("getting post %q: %w", postID, err)
	}
	return dataObject(resp), nil
}

// AggregatePostStats retrieves publication-wide statistics summed across all
// posts matching the given filters. Empty filters default to
// StatusConfirmed, AudienceAll, and PlatformAll; stats for draft posts are
// rarely meaningful, so status defaults tighter here than in ListPosts.
func (c *Client) AggregatePostStats(ctx context.Context, publicationID, status, audience, platform string) (map[string]any, error) {
	if status == "" {
		status = StatusConfirmed
	}
	if audience == "" {
		audience = AudienceAll
	}
	if platform == "" {
		platform = PlatformAll
	}

	query := url.Values{}
	query.Set("status", status)
	query.Set("audience", audience)
	query.Set("platform", platform)

	path := "/publications/" + url.PathEscape(publicationID) + "/posts/aggregate_stats"
	var resp map[string]any
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, fmt.Errorf("getting aggregate post stats for publication %q: %w", publicationID, err)
	}
	return dataObject(resp), nil
}
