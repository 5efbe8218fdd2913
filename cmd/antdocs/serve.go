package main

import (
	antdocsmcp "github.com/fwojciec/antdocs/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := antdocsmcp.NewServer(deps.Catalog, Version)

	if c.HTTP != "" {
		deps.Logger.Info("serving MCP over HTTP", "addr", c.HTTP)
		return server.NewStreamableHTTPServer(s).Start(c.HTTP)
	}

	deps.Logger.Info("serving MCP over stdio")
	return server.ServeStdio(s)
}
