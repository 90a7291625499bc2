package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usebeehiiv/beehiiv-mcp/pkg/beehiiv"
)

// ListPostsInput is the input for list_posts.
type ListPostsInput struct {
	PublicationID string   `json:"publication_id"`
	Limit         int      `json:"limit,omitempty"`
	Page          int      `json:"page,omitempty"`
	Status        string   `json:"status,omitempty"`
	Audience      string   `json:"audience,omitempty"`
	Platform      string   `json:"platform,omitempty"`
	OrderBy       string   `json:"order_by,omitempty"`
	Direction     string   `json:"direction,omitempty"`
	Expand        []string `json:"expand,omitempty"`
}

// GetPostDetailsInput is the input for get_post_details.
type GetPostDetailsInput struct {
	PublicationID string   `json:"publication_id"`
	PostID        string   `json:"post_id"`
	Expand        []string `json:"expand,omitempty"`
}

// GetPostsSummaryStatsInput is the input for get_posts_summary_stats.
type GetPostsSummaryStatsInput struct {
	PublicationID string `json:"publication_id"`
	Status        string `json:"status,omitempty"`
	Audience      string `json:"audience,omitempty"`
	Platform      string `json:"platform,omitempty"`
}

// ToolListPosts lists posts from a publication. Defaults here mirror the
// schema, and the client applies them once more; the call behaves the same
// whether or not the host validated the arguments.
func ToolListPosts(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPostsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPostsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		opts := beehiiv.ListPostsOptions{
			Limit:     input.Limit,
			Page:      input.Page,
			Status:    defaultString(input.Status, beehiiv.StatusAll),
			Audience:  defaultString(input.Audience, beehiiv.AudienceAll),
			Platform:  defaultString(input.Platform, beehiiv.PlatformAll),
			OrderBy:   defaultString(input.OrderBy, beehiiv.OrderByCreated),
			Direction: defaultString(input.Direction, beehiiv.DirectionDesc),
			Expand:    input.Expand,
		}
		if opts.Limit == 0 {
			opts.Limit = beehiiv.DefaultPostLimit
		}
		if opts.Page == 0 {
			opts.Page = 1
		}

		posts, err := client.ListPosts(ctx, input.PublicationID, opts)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(posts), nil, nil
	}
}

// ToolGetPostDetails fetches a single post, optionally expanded.
func ToolGetPostDetails(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPostDetailsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPostDetailsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		post, err := client.GetPost(ctx, input.PublicationID, input.PostID, input.Expand)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(post), nil, nil
	}
}

// ToolGetPostsSummaryStats fetches aggregate stats across a publication's
// posts. Stats default to confirmed posts, the only status with complete
// numbers.
func ToolGetPostsSummaryStats(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPostsSummaryStatsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPostsSummaryStatsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		stats, err := client.AggregatePostStats(ctx, input.PublicationID,
			defaultString(input.Status, beehiiv.StatusConfirmed),
			defaultString(input.Audience, beehiiv.AudienceAll),
			defaultString(input.Platform, beehiiv.PlatformAll),
		)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(stats), nil, nil
	}
}
