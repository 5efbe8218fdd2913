package main

import (
	"fmt"

	"github.com/fwojciec/antdocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	refs, err := deps.Catalog.ListComponents(deps.Ctx, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", antdocs.ErrorMessage(err))
		return err
	}

	for _, r := range refs {
		fmt.Fprintf(deps.Stdout, "%-20s %s\n", r.Name, r.URL)
	}

	return nil
}
