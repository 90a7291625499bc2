package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: list_publications
	sdkmcp.AddTool(srv, listPublicationsTool(), ToolListPublications(d))

	// Tool 2: get_publication_details
	sdkmcp.AddTool(srv, getPublicationDetailsTool(), ToolGetPublicationDetails(d))

	// Tool 3: list_posts
	sdkmcp.AddTool(srv, listPostsTool(), ToolListPosts(d))

	// Tool 4: get_post_details
	sdkmcp.AddTool(srv, getPostDetailsTool(), ToolGetPostDetails(d))

	// Tool 5: get_posts_summary_stats
	sdkmcp.AddTool(srv, getPostsSummaryStatsTool(), ToolGetPostsSummaryStats(d))

	// Tool 6: list_segments
	sdkmcp.AddTool(srv, listSegmentsTool(), ToolListSegments(d))

	// Tool 7: get_segment_details
	sdkmcp.AddTool(srv, getSegmentDetailsTool(), ToolGetSegmentDetails(d))
}
