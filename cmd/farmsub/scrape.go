package main

import (
	"fmt"
	"sort"

	"github.com/mlipska/farmsub"
	"github.com/mlipska/farmsub/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	regions, err := resolveRegions(c.State)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmsub.ErrorMessage(err))
		return err
	}

	years := scrape.Years(c.From, c.To)
	if len(years) == 0 {
		err := farmsub.Errorf(farmsub.EINVALID, "year range %d-%d is empty", c.From, c.To)
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmsub.ErrorMessage(err))
		return err
	}

	// Apply user-specified concurrency
	if c.Concurrency > 0 {
		deps.Scraper.Concurrency = c.Concurrency
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d pages\n", event.Total)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s %d: %v\n", event.Report.Region.Abbr, event.Report.Year, event.Report.Err)
		case scrape.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, regions, years, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Decoded %d records from %d pages (%s)\n",
		result.Decoded, len(result.Pages), scrape.FormatBytes(result.Bytes))
	if result.FailedPages > 0 {
		fmt.Fprintf(deps.Stdout, "  %d pages failed\n", result.FailedPages)
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  %d records failed:%s\n", result.Failed, formatFailureCodes(result.Pages))
	}

	if c.Records {
		for _, rec := range result.Records {
			fmt.Fprintf(deps.Stdout, "%05d %d %.2f %.2f %.2f %.2f %.2f\n",
				rec.RegionID, rec.Year, rec.Total, rec.Commodity, rec.Conservation, rec.Disaster, rec.Insurance)
		}
	}

	return nil
}

// resolveRegions maps state arguments to regions, defaulting to every state.
func resolveRegions(queries []string) ([]farmsub.Region, error) {
	if len(queries) == 0 {
		return farmsub.States(), nil
	}
	regions := make([]farmsub.Region, 0, len(queries))
	for _, q := range queries {
		region, err := farmsub.FindRegion(q)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// formatFailureCodes flattens per-page failure counts into one sorted
// " code=n" list.
func formatFailureCodes(pages []scrape.PageReport) string {
	totals := make(map[string]int)
	for _, p := range pages {
		for code, n := range p.FailureCodes {
			totals[code] += n
		}
	}

	codes := make([]string, 0, len(totals))
	for code := range totals {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var out string
	for _, code := range codes {
		out += fmt.Sprintf(" %s=%d", code, totals[code])
	}
	return out
}
