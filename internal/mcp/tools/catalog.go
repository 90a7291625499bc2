package tools

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usebeehiiv/beehiiv-mcp/pkg/beehiiv"
)

// The catalog is declared explicitly rather than inferred from the input
// structs: the schemas carry the enums, bounds, and defaults the host shows
// the model, and handlers re-apply the same defaults so behavior does not
// depend on the host honoring them.

// f64 returns a pointer to v, for schema bounds.
func f64(v float64) *float64 {
	return &v
}

// expandSchema describes the expand argument shared by the post tools.
func expandSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: "Additional data to include in response",
		Items: &jsonschema.Schema{
			Type: "string",
			Enum: []any{
				beehiiv.ExpandStats,
				beehiiv.ExpandFreeWebContent,
				beehiiv.ExpandFreeEmailContent,
				beehiiv.ExpandFreeRSSContent,
				beehiiv.ExpandPremiumWebContent,
				beehiiv.ExpandPremiumEmailContent,
			},
		},
	}
}

// Tool 1: list_publications
func listPublicationsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "list_publications",
		Description: "List all publications accessible with the API key",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}
}

// Tool 2: get_publication_details
func getPublicationDetailsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "get_publication_details",
		Description: "Get detailed information about a specific publication",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"publication_id": {
					Type:        "string",
					Description: "The publication ID (e.g., pub_00000000-0000-0000-0000-000000000000)",
				},
			},
			Required: []string{"publication_id"},
		},
	}
}

// Tool 3: list_posts
func listPostsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "list_posts",
		Description: "List posts from a publication with various filters",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"publication_id": {
					Type:        "string",
					Description: "The publication ID",
				},
				"limit": {
					Type:        "integer",
					Description: "Number of posts to return (1-100, default: 10)",
					Minimum:     f64(1),
					Maximum:     f64(100),
					Default:     json.RawMessage(`10`),
				},
				"page": {
					Type:        "integer",
					Description: "Page number for pagination (default: 1)",
					Minimum:     f64(1),
					Default:     json.RawMessage(`1`),
				},
				"status": {
					Type:        "string",
					Description: "Filter by post status",
					Enum: []any{
						beehiiv.StatusDraft,
						beehiiv.StatusConfirmed,
						beehiiv.StatusArchived,
						beehiiv.StatusAll,
					},
					Default: json.RawMessage(`"all"`),
				},
				"audience": {
					Type:        "string",
					Description: "Filter by audience type",
					Enum: []any{
						beehiiv.AudienceFree,
						beehiiv.AudiencePremium,
						beehiiv.AudienceAll,
					},
					Default: json.RawMessage(`"all"`),
				},
				"platform": {
					Type:        "string",
					Description: "Filter by platform",
					Enum: []any{
						beehiiv.PlatformWeb,
						beehiiv.PlatformEmail,
						beehiiv.PlatformBoth,
						beehiiv.PlatformAll,
					},
					Default: json.RawMessage(`"all"`),
				},
				"order_by": {
					Type:        "string",
					Description: "Field to sort by",
					Enum: []any{
						beehiiv.OrderByCreated,
						beehiiv.OrderByPublishDate,
						beehiiv.OrderByDisplayedDate,
					},
					Default: json.RawMessage(`"created"`),
				},
				"direction": {
					Type:        "string",
					Description: "Sort direction",
					Enum: []any{
						beehiiv.DirectionAsc,
						beehiiv.DirectionDesc,
					},
					Default: json.RawMessage(`"desc"`),
				},
				"expand": expandSchema(),
			},
			Required: []string{"publication_id"},
		},
	}
}

// Tool 4: get_post_details
func getPostDetailsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "get_post_details",
		Description: "Get detailed information about a specific post",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"publication_id": {
					Type:        "string",
					Description: "The publication ID",
				},
				"post_id": {
					Type:        "string",
					Description: "The post ID (e.g., post_00000000-0000-0000-0000-000000000000)",
				},
				"expand": expandSchema(),
			},
			Required: []string{"publication_id", "post_id"},
		},
	}
}

// Tool 5: get_posts_summary_stats
func getPostsSummaryStatsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "get_posts_summary_stats",
		Description: "Get aggregate statistics for all posts in a publication",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"publication_id": {
					Type:        "string",
					Description: "The publication ID",
				},
				"status": {
					Type:        "string",
					Description: "Filter by post status for stats",
					Enum: []any{
						beehiiv.StatusDraft,
						beehiiv.StatusConfirmed,
						beehiiv.StatusArchived,
						beehiiv.StatusAll,
					},
					Default: json.RawMessage(`"confirmed"`),
				},
				"audience": {
					Type:        "string",
					Description: "Filter by audience type for stats",
					Enum: []any{
						beehiiv.AudienceFree,
						beehiiv.AudiencePremium,
						beehiiv.AudienceAll,
					},
					Default: json.RawMessage(`"all"`),
				},
				"platform": {
					Type:        "string",
					Description: "Filter by platform for stats",
					Enum: []any{
						beehiiv.PlatformWeb,
						beehiiv.PlatformEmail,
						beehiiv.PlatformBoth,
						beehiiv.PlatformAll,
					},
					Default: json.RawMessage(`"all"`),
				},
			},
			Required: []string{"publication_id"},
		},
	}
}

// Tool 6: list_segments
func listSegmentsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "list_segments",
		Description: "List all segments for a publication",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"publication_id": {
					Type:        "string",
					Description: "The publication ID",
				},
			},
			Required: []string{"publication_id"},
		},
	}
}

// Tool 7: get_segment_details
func getSegmentDetailsTool() *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        "get_segment_details",
		Description: "Get detailed information about a specific segment",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"publication_id": {
					Type:        "string",
					Description: "The publication ID",
				},
				"segment_id": {
					Type:        "string",
					Description: "The segment ID",
				},
			},
			Required: []string{"publication_id", "segment_id"},
		},
	}
}

// Descriptors returns the full tool catalog in registration order.
func Descriptors() []*sdkmcp.Tool {
	return []*sdkmcp.Tool{
		listPublicationsTool(),
		getPublicationDetailsTool(),
		listPostsTool(),
		getPostDetailsTool(),
		getPostsSummaryStatsTool(),
		listSegmentsTool(),
		getSegmentDetailsTool(),
	}
}

// Names returns the set of tool names in the catalog.
func Names() map[string]bool {
	names := make(map[string]bool, 7)
	for _, t := range Descriptors() {
		names[t.Name] = true
	}
	return names
}
