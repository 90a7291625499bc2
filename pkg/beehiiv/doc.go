// Package beehiiv provides a read-only Go client for the Beehiiv v2 API.
//
// The Beehiiv API exposes newsletter analytics: publications, posts with
// engagement stats, audience segments, and publication-wide aggregate
// metrics. This client covers the read surface used for analytics and
// reporting; it performs no write operations.
//
// # Quick Start
//
// Create a client with an API key and list publications:
//
//	c := beehiiv.New(os.Getenv("BEEHIIV_API_KEY"))
//	pubs, err := c.ListPublications(ctx)
//
// Use custom configuration:
//
//	c := beehiiv.New(apiKey,
//	    beehiiv.WithBaseURL("https://api.beehiiv.com/v2"),
//	    beehiiv.WithTimeout(10*time.Second),
//	)
//
// # Payloads
//
// The API wraps every response in a {"data": ...} envelope. Methods unwrap
// the envelope and return the payload as opaque JSON values ([]any for
// listings, map[string]any for single resources); fields are passed through
// without interpretation. ListPosts is the exception: it returns the whole
// envelope so callers keep the pagination metadata alongside the page.
//
// # Post Ordering
//
// The posts listing endpoint does not reliably honor its order_by parameter.
// ListPosts re-sorts each returned page locally with SortPostsByDate so the
// requested date field and direction hold within the page. Ordering across
// pages is not corrected.
//
// # Expansion
//
// Posts support an expand parameter requesting nested data (for example
// "stats" for engagement metrics). Expansions are sent as a repeated
// expand[] query parameter:
//
//	posts, err := c.ListPosts(ctx, pubID, beehiiv.ListPostsOptions{
//	    Expand: []string{beehiiv.ExpandStats},
//	})
package beehiiv
