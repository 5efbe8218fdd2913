package main

import (
	"fmt"

	"github.com/fwojciec/antdocs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.ExportAll(deps.Ctx, c.Force, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", antdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d components (generated %s)\n",
		catalog.Count, catalog.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	return nil
}
