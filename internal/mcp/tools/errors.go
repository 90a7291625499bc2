package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/usebeehiiv/beehiiv-mcp/pkg/beehiiv"
)

// apiErrorText converts an error from the Beehiiv client into the text a
// tool payload carries. Credential and permission problems get actionable
// messages; everything else keeps enough detail to diagnose.
func apiErrorText(err error) string {
	slog.Warn("beehiiv API call failed",
		slog.String("error", err.Error()),
	)

	var apiErr *beehiiv.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401:
			return "invalid Beehiiv API key, check the BEEHIIV_API_KEY environment variable"
		case apiErr.StatusCode == 403:
			return "access forbidden, the API key does not have permission for this resource"
		case apiErr.StatusCode == 404:
			return "resource not found, check the publication, post, or segment ID"
		case apiErr.StatusCode >= 500:
			return fmt.Sprintf("Beehiiv API server error (HTTP %d), try again later", apiErr.StatusCode)
		default:
			return fmt.Sprintf("Beehiiv API request failed (HTTP %d): %s", apiErr.StatusCode, apiErr.Message)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "request to the Beehiiv API timed out"
		}
		return "cannot connect to the Beehiiv API"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request to the Beehiiv API timed out"
	}

	return err.Error()
}
