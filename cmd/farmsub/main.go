package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mlipska/farmsub"
	"github.com/mlipska/farmsub/goquery"
	farmhttp "github.com/mlipska/farmsub/http"
	"github.com/mlipska/farmsub/scrape"
	farmslog "github.com/mlipska/farmsub/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Endpoint scraped by network commands. Set before calling Run().
	BaseURL string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		BaseURL: defaultBaseURL(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("farmsub"),
		kong.Description("Scrape federal farm subsidy totals by county"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'farmsub --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the scrape pipeline for commands that hit the network.
	switch cmd := kongCtx.Command(); {
	case strings.HasPrefix(cmd, "scrape"):
		deps.Scraper = m.scraper(cli.Scrape.Timeout, cli.Verbose, stderr)
	case strings.HasPrefix(cmd, "probe"):
		deps.Scraper = m.scraper(cli.Probe.Timeout, cli.Verbose, stderr)
	}
	if deps.Scraper != nil {
		defer deps.Scraper.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// scraper wires the fetch and extraction pipeline behind a Scraper.
func (m *Main) scraper(timeout time.Duration, verbose bool, stderr io.Writer) *scrape.Scraper {
	if timeout <= 0 {
		timeout = farmhttp.DefaultFetchTimeout
	}

	var fetcher farmsub.Fetcher = farmhttp.NewFetcher(farmhttp.WithTimeout(timeout))
	var extractor farmsub.Extractor = goquery.NewExtractor()

	if verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = farmslog.NewLoggingFetcher(fetcher, logger)
		extractor = farmslog.NewLoggingExtractor(extractor, logger)
	}

	return &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		BaseURL:   m.BaseURL,
	}
}

func defaultBaseURL() string {
	if base := os.Getenv("FARMSUB_BASE_URL"); base != "" {
		return base
	}
	return scrape.DefaultBaseURL
}
