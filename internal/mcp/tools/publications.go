package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListPublicationsInput is the input for list_publications.
type ListPublicationsInput struct{}

// GetPublicationDetailsInput is the input for get_publication_details.
type GetPublicationDetailsInput struct {
	PublicationID string `json:"publication_id"`
}

// ToolListPublications lists the publications the API key can access.
func ToolListPublications(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPublicationsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPublicationsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		pubs, err := client.ListPublications(ctx)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(pubs), nil, nil
	}
}

// ToolGetPublicationDetails fetches a single publication.
func ToolGetPublicationDetails(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPublicationDetailsInput) (*sdkmcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetPublicationDetailsInput) (*sdkmcp.CallToolResult, any, error) {
		client, err := d.APIClient()
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		pub, err := client.GetPublication(ctx, input.PublicationID)
		if err != nil {
			return FailureResult(apiErrorText(err)), nil, nil
		}

		return JSONToolResult(pub), nil, nil
	}
}
