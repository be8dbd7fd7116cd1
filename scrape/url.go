package scrape

import "fmt"

// DefaultBaseURL is the region summary endpoint scraped by default.
// It can be overridden per Scraper for mirrors or test servers.
const DefaultBaseURL = "https://farm.ewg.org/regionsummary.php"

// The provider publishes region summaries for the 2010 through 2019
// program years.
const (
	FirstYear = 2010
	LastYear  = 2019
)

// PageURL builds the URL for one grid cell. The region FIPS code and the
// year slot into the endpoint's fixed query string.
func PageURL(base, fips string, year int) string {
	return fmt.Sprintf("%s?fips=%s&progcode=total&yr=%d", base, fips, year)
}

// Years enumerates the inclusive range from one year to another.
func Years(from, to int) []int {
	if to < from {
		return nil
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

// DefaultYears returns every year the provider covers.
func DefaultYears() []int {
	return Years(FirstYear, LastYear)
}
