package main

import (
	"context"
	"io"
	"time"

	"github.com/mlipska/farmsub/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and extraction details to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Scrape subsidy records across states and years"`
	Probe  ProbeCmd  `cmd:"" help:"Fetch one page and print extraction diagnostics"`
	States StatesCmd `cmd:"" help:"List the states the scraper covers"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	State       []string      `short:"s" help:"State to scrape: postal code, name, or FIPS (repeatable; default all)"`
	From        int           `default:"2010" help:"First program year"`
	To          int           `default:"2019" help:"Last program year"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Records     bool          `short:"r" help:"Print decoded records to stdout"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	State   string        `arg:"" help:"State to probe: postal code, name, or FIPS"`
	Year    int           `arg:"" help:"Program year"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
}

// StatesCmd is the "states" subcommand.
type StatesCmd struct{}
