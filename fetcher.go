package farmsub

import "context"

// Fetcher retrieves region summary pages by URL.
type Fetcher interface {
	// Fetch performs a GET and returns the page body as a string.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (page string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
