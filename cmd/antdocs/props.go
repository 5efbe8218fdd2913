package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/antdocs"
)

// Run executes the props command.
func (c *PropsCmd) Run(deps *Dependencies) error {
	rec, err := deps.Catalog.GetComponent(deps.Ctx, c.Name, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", antdocs.ErrorMessage(err))
		return err
	}

	data, err := json.MarshalIndent(antdocs.FlattenProps(rec), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	return nil
}
