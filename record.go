package farmsub

// Category identifies one of the five program groupings every county
// record reports, in the order the source renders them.
type Category int

// Categories in their fixed reporting order. Total always comes first,
// followed by the four program subcategories.
const (
	CategoryTotal Category = iota
	CategoryCommodity
	CategoryConservation
	CategoryDisaster
	CategoryInsurance
)

// String returns the category's display name.
func (c Category) String() string {
	switch c {
	case CategoryTotal:
		return "total"
	case CategoryCommodity:
		return "commodity"
	case CategoryConservation:
		return "conservation"
	case CategoryDisaster:
		return "disaster"
	case CategoryInsurance:
		return "insurance"
	}
	return "unknown"
}

// Categories returns all categories in their fixed reporting order.
func Categories() [5]Category {
	return [5]Category{
		CategoryTotal,
		CategoryCommodity,
		CategoryConservation,
		CategoryDisaster,
		CategoryInsurance,
	}
}

// Record is one county's subsidy totals for one year. RegionID is the
// county FIPS code; Year is supplied by the caller per request since the
// source pages do not carry it. Within one decoded dataset the pair
// (RegionID, Year) is the natural key.
type Record struct {
	RegionID     int     `json:"regionId"`
	Total        float64 `json:"total"`
	Commodity    float64 `json:"commodity"`
	Conservation float64 `json:"conservation"`
	Disaster     float64 `json:"disaster"`
	Insurance    float64 `json:"insurance"`
	Year         int     `json:"year"`
}

// Value returns the amount for a single category.
func (r *Record) Value(c Category) float64 {
	switch c {
	case CategoryTotal:
		return r.Total
	case CategoryCommodity:
		return r.Commodity
	case CategoryConservation:
		return r.Conservation
	case CategoryDisaster:
		return r.Disaster
	case CategoryInsurance:
		return r.Insurance
	}
	return 0
}

// Values returns the five amounts in the fixed category order.
func (r *Record) Values() [5]float64 {
	return [5]float64{r.Total, r.Commodity, r.Conservation, r.Disaster, r.Insurance}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.RegionID <= 0 {
		return Errorf(EINVALID, "record region ID required")
	}
	if r.Year <= 0 {
		return Errorf(EINVALID, "record year required")
	}
	for _, c := range Categories() {
		if r.Value(c) < 0 {
			return Errorf(EINVALID, "%s amount must not be negative", c)
		}
	}
	return nil
}

// RecordResult is the outcome of decoding one record's raw text: either a
// decoded Record or the error that stopped it. A malformed record fails on
// its own; it never aborts the rest of its block.
type RecordResult struct {
	Record *Record
	Err    error
}

// Records filters results down to the successfully decoded records,
// preserving block order.
func Records(results []RecordResult) []*Record {
	records := make([]*Record, 0, len(results))
	for _, res := range results {
		if res.Err == nil && res.Record != nil {
			records = append(records, res.Record)
		}
	}
	return records
}
