package farmsub

import "strings"

// Region identifies a state-level scrape target. FIPS is the 5-character
// zero-padded state code the source expects: the 2-digit state FIPS with a
// "000" county suffix (e.g. Washington is "53000").
type Region struct {
	FIPS string `json:"fips"`
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

// states lists the 50 states plus the District of Columbia in FIPS order.
var states = []Region{
	{FIPS: "01000", Abbr: "AL", Name: "Alabama"},
	{FIPS: "02000", Abbr: "AK", Name: "Alaska"},
	{FIPS: "04000", Abbr: "AZ", Name: "Arizona"},
	{FIPS: "05000", Abbr: "AR", Name: "Arkansas"},
	{FIPS: "06000", Abbr: "CA", Name: "California"},
	{FIPS: "08000", Abbr: "CO", Name: "Colorado"},
	{FIPS: "09000", Abbr: "CT", Name: "Connecticut"},
	{FIPS: "10000", Abbr: "DE", Name: "Delaware"},
	{FIPS: "11000", Abbr: "DC", Name: "District of Columbia"},
	{FIPS: "12000", Abbr: "FL", Name: "Florida"},
	{FIPS: "13000", Abbr: "GA", Name: "Georgia"},
	{FIPS: "15000", Abbr: "HI", Name: "Hawaii"},
	{FIPS: "16000", Abbr: "ID", Name: "Idaho"},
	{FIPS: "17000", Abbr: "IL", Name: "Illinois"},
	{FIPS: "18000", Abbr: "IN", Name: "Indiana"},
	{FIPS: "19000", Abbr: "IA", Name: "Iowa"},
	{FIPS: "20000", Abbr: "KS", Name: "Kansas"},
	{FIPS: "21000", Abbr: "KY", Name: "Kentucky"},
	{FIPS: "22000", Abbr: "LA", Name: "Louisiana"},
	{FIPS: "23000", Abbr: "ME", Name: "Maine"},
	{FIPS: "24000", Abbr: "MD", Name: "Maryland"},
	{FIPS: "25000", Abbr: "MA", Name: "Massachusetts"},
	{FIPS: "26000", Abbr: "MI", Name: "Michigan"},
	{FIPS: "27000", Abbr: "MN", Name: "Minnesota"},
	{FIPS: "28000", Abbr: "MS", Name: "Mississippi"},
	{FIPS: "29000", Abbr: "MO", Name: "Missouri"},
	{FIPS: "30000", Abbr: "MT", Name: "Montana"},
	{FIPS: "31000", Abbr: "NE", Name: "Nebraska"},
	{FIPS: "32000", Abbr: "NV", Name: "Nevada"},
	{FIPS: "33000", Abbr: "NH", Name: "New Hampshire"},
	{FIPS: "34000", Abbr: "NJ", Name: "New Jersey"},
	{FIPS: "35000", Abbr: "NM", Name: "New Mexico"},
	{FIPS: "36000", Abbr: "NY", Name: "New York"},
	{FIPS: "37000", Abbr: "NC", Name: "North Carolina"},
	{FIPS: "38000", Abbr: "ND", Name: "North Dakota"},
	{FIPS: "39000", Abbr: "OH", Name: "Ohio"},
	{FIPS: "40000", Abbr: "OK", Name: "Oklahoma"},
	{FIPS: "41000", Abbr: "OR", Name: "Oregon"},
	{FIPS: "42000", Abbr: "PA", Name: "Pennsylvania"},
	{FIPS: "44000", Abbr: "RI", Name: "Rhode Island"},
	{FIPS: "45000", Abbr: "SC", Name: "South Carolina"},
	{FIPS: "46000", Abbr: "SD", Name: "South Dakota"},
	{FIPS: "47000", Abbr: "TN", Name: "Tennessee"},
	{FIPS: "48000", Abbr: "TX", Name: "Texas"},
	{FIPS: "49000", Abbr: "UT", Name: "Utah"},
	{FIPS: "50000", Abbr: "VT", Name: "Vermont"},
	{FIPS: "51000", Abbr: "VA", Name: "Virginia"},
	{FIPS: "53000", Abbr: "WA", Name: "Washington"},
	{FIPS: "54000", Abbr: "WV", Name: "West Virginia"},
	{FIPS: "55000", Abbr: "WI", Name: "Wisconsin"},
	{FIPS: "56000", Abbr: "WY", Name: "Wyoming"},
}

// States returns every scrapeable region in FIPS order. The slice is a
// copy; callers may reorder it freely.
func States() []Region {
	out := make([]Region, len(states))
	copy(out, states)
	return out
}

// FindRegion resolves a user-supplied region query: a postal abbreviation,
// a full state name (case-insensitive), or an exact 5-character FIPS code.
// Returns ENOTFOUND if nothing matches.
func FindRegion(query string) (Region, error) {
	q := strings.TrimSpace(query)
	for _, r := range states {
		if strings.EqualFold(q, r.Abbr) || strings.EqualFold(q, r.Name) || q == r.FIPS {
			return r, nil
		}
	}
	return Region{}, Errorf(ENOTFOUND, "unknown region %q", query)
}
