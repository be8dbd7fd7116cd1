// Package goquery provides a CSS-selector-based implementation of
// farmsub.Extractor for isolating the map data fragment from region
// summary pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlipska/farmsub"
)

// DefaultSelector targets the second script element inside the page's
// content cell. The first script pulls in the mapping library; the second
// is the inline block that carries the county data.
const DefaultSelector = "td.cont script:nth-of-type(2)"

// Extractor isolates the map data fragment using a fixed structural CSS
// selector. The selector must match exactly one element: zero matches
// means the fragment is gone, more than one means the page cannot be
// trusted to identify it. There are no fallback selectors.
type Extractor struct {
	selector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelector overrides the structural selector.
// Defaults to DefaultSelector if not specified.
func WithSelector(selector string) Option {
	return func(e *Extractor) {
		e.selector = selector
	}
}

// NewExtractor creates a new selector-based Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selector: DefaultSelector,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract parses the page and returns the text content of the one element
// the selector matches, with every whitespace run collapsed to a single
// space.
func (e *Extractor) Extract(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", farmsub.Errorf(farmsub.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.selector)
	if n := sel.Length(); n == 0 {
		return "", farmsub.Errorf(farmsub.ENOTFOUND, "selector %q matched no elements", e.selector)
	} else if n > 1 {
		return "", farmsub.Errorf(farmsub.EAMBIGUOUS, "selector %q matched %d elements, want exactly 1", e.selector, n)
	}

	return flattenWhitespace(sel.Text()), nil
}

// flattenWhitespace collapses runs of whitespace into single spaces and
// trims the ends, turning the fragment into one plain text block.
func flattenWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
