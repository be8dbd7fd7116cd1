package main

import (
	"fmt"

	"github.com/mlipska/farmsub"
)

// Run executes the states command.
func (c *StatesCmd) Run(deps *Dependencies) error {
	for _, region := range farmsub.States() {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", region.FIPS, region.Abbr, region.Name)
	}
	return nil
}
