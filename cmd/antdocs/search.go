package main

import (
	"fmt"

	"github.com/fwojciec/antdocs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	refs, err := deps.Catalog.SearchComponents(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", antdocs.ErrorMessage(err))
		return err
	}

	if len(refs) == 0 {
		fmt.Fprintln(deps.Stdout, "No components matched.")
		return nil
	}

	for _, r := range refs {
		fmt.Fprintf(deps.Stdout, "%-20s %s\n", r.Name, r.URL)
	}

	return nil
}
