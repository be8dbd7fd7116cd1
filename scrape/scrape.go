// Package scrape provides batch orchestration over the region and year
// grid. It builds page URLs, fetches with retry, extracts and decodes
// every page, and aggregates per-page reports into a run result.
package scrape

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mlipska/farmsub"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed in parallel.
const DefaultConcurrency = 4

// Scraper orchestrates scraping across the page grid.
type Scraper struct {
	Fetcher     farmsub.Fetcher
	Extractor   farmsub.Extractor
	BaseURL     string
	Concurrency int
	RetryDelays []time.Duration
}

// Page identifies one cell of the scrape grid.
type Page struct {
	Region farmsub.Region
	Year   int
}

// PageReport holds the outcome of scraping a single page.
type PageReport struct {
	Region farmsub.Region
	Year   int
	URL    string

	// PageHash fingerprints the raw page so runs can be compared. A
	// changed hash alongside new failures usually means the provider
	// changed the page format.
	PageHash string
	Bytes    int

	// Decoded and Failed count records within the page. FailureCodes
	// breaks the failures down by error code.
	Decoded      int
	Failed       int
	FailureCodes map[string]int

	// Err is set when the page as a whole failed: fetch error after
	// retries, or fragment extraction failure. Record-level failures
	// do not set it.
	Err error
}

// Result holds the outcome of a scrape run.
type Result struct {
	// RunID correlates reports and log lines from one batch.
	RunID string

	// Records holds every decoded record, in grid order.
	Records []*farmsub.Record

	// Pages holds one report per grid cell, in grid order.
	Pages []PageReport

	Decoded     int
	Failed      int
	FailedPages int
	Bytes       int
}

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Report    *PageReport
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	position int
	report   PageReport
	records  []*farmsub.Record
}

// Run scrapes every (region, year) cell of the grid, fanning pages out
// across workers. Pages are independent: each page's records depend only
// on that page's fragment, so the result comes back in grid order no
// matter how the workers interleave. The progress callback, if provided,
// receives events as pages complete.
func (s *Scraper) Run(ctx context.Context, regions []farmsub.Region, years []int, progress ProgressFunc) (*Result, error) {
	// Enumerate the grid region-major so one region's years stay
	// together in reports and output.
	pages := make([]Page, 0, len(regions)*len(years))
	for _, r := range regions {
		for _, y := range years {
			pages = append(pages, Page{Region: r, Year: y})
		}
	}

	result := &Result{RunID: uuid.New().String()}
	if len(pages) == 0 {
		return result, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(pages))

	var completed atomic.Int64
	total := len(pages)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			i, page := i, page
			g.Go(func() error {
				resultCh <- s.processPage(gctx, i, page)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in grid order.
	results := make([]pageResult, len(pages))
	for res := range resultCh {
		completed.Add(1)
		results[res.position] = res

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Report:    &res.report,
		}
		if res.report.Err != nil {
			event.Type = ProgressFailed
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Concatenate per-page record slices once, at the end.
	for _, res := range results {
		result.Pages = append(result.Pages, res.report)
		result.Records = append(result.Records, res.records...)
		result.Failed += res.report.Failed
		result.Bytes += res.report.Bytes
		if res.report.Err != nil {
			result.FailedPages++
		}
	}
	result.Decoded = len(result.Records)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// processPage scrapes a single page of the grid.
func (s *Scraper) processPage(ctx context.Context, position int, page Page) pageResult {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	res := pageResult{
		position: position,
		report: PageReport{
			Region: page.Region,
			Year:   page.Year,
			URL:    PageURL(base, page.Region.FIPS, page.Year),
		},
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	body, err := FetchWithRetryDelays(ctx, res.report.URL, s.Fetcher.Fetch, delays)
	if err != nil {
		res.report.Err = err
		return res
	}
	res.report.Bytes = len(body)
	res.report.PageHash = HashPage(body)

	decoded, err := farmsub.ScrapeOne(s.Extractor, body, page.Year)
	if err != nil {
		res.report.Err = err
		return res
	}

	for _, r := range decoded {
		if r.Err != nil {
			res.report.Failed++
			if res.report.FailureCodes == nil {
				res.report.FailureCodes = make(map[string]int)
			}
			res.report.FailureCodes[farmsub.ErrorCode(r.Err)]++
			continue
		}
		res.records = append(res.records, r.Record)
	}
	res.report.Decoded = len(res.records)

	return res
}
