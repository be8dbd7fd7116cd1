package mock

import "github.com/mlipska/farmsub"

var _ farmsub.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of farmsub.Extractor.
type Extractor struct {
	ExtractFn func(page string) (string, error)
}

func (e *Extractor) Extract(page string) (string, error) {
	return e.ExtractFn(page)
}
