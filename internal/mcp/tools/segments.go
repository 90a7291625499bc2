package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListSegmentsInput is the input for list_segments.
type ListSegmentsInput struct {
	PublicationID string `json:"publication_id"`
}

// GetSegmentDetailsInput is the input for get_segment_details.
type GetSegmentDetailsInput struct {
	PublicationID string `json:"publication_id"`
	SegmentID     string `json:"segment_id"`
}

// ToolListSegments lists a publication's segments.
func ToolListSegments(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSegmentsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSegmentsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		segments, err := client.ListSegments(ctx, input.PublicationID)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(segments), nil, nil
	}
}

// ToolGetSegmentDetails fetches a single segment.
func ToolGetSegmentDetails(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetSegmentDetailsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetSegmentDetailsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		segment, err := client.GetSegment(ctx, input.PublicationID, input.SegmentID)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(segment), nil, nil
	}
}
