package farmsub

// ScrapeOne runs the full pipeline for one fetched page: extract the map
// data fragment, then decode it into records for the given year. An
// extraction failure is fatal for the whole page; decode failures stay
// scoped to their own records inside the returned results.
func ScrapeOne(ex Extractor, page string, year int) ([]RecordResult, error) {
	block, err := ex.Extract(page)
	if err != nil {
		return nil, err
	}
	return DecodeBlock(block, year), nil
}
