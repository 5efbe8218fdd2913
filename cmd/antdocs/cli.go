package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/antdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Catalog antdocs.CatalogService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string `default:"https://4x.ant.design" env:"ANTDOCS_BASE_URL" help:"Documentation site root"`
	Verbose bool   `short:"v" help:"Enable info-level logging"`

	Serve  ServeCmd  `cmd:"" help:"Serve the catalog over MCP (stdio by default)"`
	List   ListCmd   `cmd:"" help:"List all components from the overview page"`
	Get    GetCmd    `cmd:"" help:"Print the structured record for one component"`
	Props  PropsCmd  `cmd:"" help:"Print the flattened props list for one component"`
	Search SearchCmd `cmd:"" help:"Search components by name substring"`
	Export ExportCmd `cmd:"" help:"Fetch every component and write the JSON catalog"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `help:"HTTP listen address (e.g. ':8080'); empty serves stdio"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Force bool `short:"f" help:"Re-fetch the index page"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Name  string `arg:"" help:"Component name, e.g. Button"`
	Force bool   `short:"f" help:"Re-fetch the component page"`
}

// PropsCmd is the "props" subcommand.
type PropsCmd struct {
	Name  string `arg:"" help:"Component name, e.g. Button"`
	Force bool   `short:"f" help:"Re-fetch the component page"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" optional:"" help:"Substring to match against component names"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Force  bool   `short:"f" help:"Re-fetch every page"`
	Output string `short:"o" help:"Artifact path (default under the data directory)"`
}
