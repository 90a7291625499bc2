package beehiiv

import "fmt"

// Post status filters for ListPostsOptions.Status and AggregatePostStats.
const (
	StatusDraft     = "draft"
	StatusConfirmed = "confirmed"
	StatusArchived  = "archived"
	StatusAll       = "all"
)

// Audience filters.
const (
	AudienceFree    = "free"
	AudiencePremium = "premium"
	AudienceAll     = "all"
)

// Platform filters.
const (
	PlatformWeb   = "web"
	PlatformEmail = "email"
	PlatformBoth  = "both"
	PlatformAll   = "all"
)

// Sort fields for ListPostsOptions.OrderBy. All three are date-bearing
// fields recognized by SortPostsByDate.
const (
	OrderByCreated       = "created"
	OrderByPublishDate   = "publish_date"
	OrderByDisplayedDate = "displayed_date"
)

// Sort directions.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Expansions for posts. Each requests additional nested data in the
// response, sent as a repeated expand[] query parameter.
const (
	ExpandStats               = "stats"
	ExpandFreeWebContent      = "free_web_content"
	ExpandFreeEmailContent    = "free_email_content"
	ExpandFreeRSSContent      = "free_rss_content"
	ExpandPremiumWebContent   = "premium_web_content"
	ExpandPremiumEmailContent = "premium_email_content"
)

// APIError represents an error response from the Beehiiv API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("beehiiv API error %d: %s", e.StatusCode, e.Message)
}

// errorResponse is the JSON structure for API errors. The API usually
// returns {"errors": [{"message": ...}]}, older endpoints a bare
// {"error": ...}.
type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Error string `json:"error"`
}

func (r *errorResponse) message() string {
	if len(r.Errors) > 0 && r.Errors[0].Message != "" {
		return r.Errors[0].Message
	}
	return r.Error
}
