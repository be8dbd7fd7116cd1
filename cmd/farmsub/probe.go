package main

import (
	"fmt"

	"github.com/mlipska/farmsub"
	"github.com/mlipska/farmsub/scrape"
)

// Run executes the probe command. It scrapes a single page and prints
// what each stage of the pipeline saw, which is the quickest way to tell
// a moved fragment from a changed record format.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	region, err := farmsub.FindRegion(c.State)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", farmsub.ErrorMessage(err))
		return err
	}

	result, err := deps.Scraper.Run(deps.Ctx, []farmsub.Region{region}, []int{c.Year}, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error probing: %v\n", err)
		return err
	}

	report := result.Pages[0]
	fmt.Fprintf(deps.Stdout, "%s %d\n", region.Name, c.Year)
	fmt.Fprintf(deps.Stdout, "  url:     %s\n", report.URL)

	if report.Err != nil {
		fmt.Fprintf(deps.Stdout, "  error:   %v\n", report.Err)
		return report.Err
	}

	fmt.Fprintf(deps.Stdout, "  page:    %s, hash %s\n", scrape.FormatBytes(report.Bytes), report.PageHash)
	fmt.Fprintf(deps.Stdout, "  records: %d decoded, %d failed%s\n", report.Decoded, report.Failed, formatFailureCodes(result.Pages))
	if len(result.Records) > 0 {
		first := result.Records[0]
		fmt.Fprintf(deps.Stdout, "  first:   county %05d total $%.2f\n", first.RegionID, first.Total)
	}

	return nil
}
