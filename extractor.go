package farmsub

// Extractor isolates the map data fragment from a region summary page.
type Extractor interface {
	// Extract locates the single script element holding the map data and
	// returns its text content with whitespace runs collapsed to single
	// spaces. Zero matches or more than one match is an error; the page
	// is unusable either way.
	Extract(page string) (string, error)
}
