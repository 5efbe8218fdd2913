package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/antdocs/catalog"
	"github.com/fwojciec/antdocs/fs"
	"github.com/fwojciec/antdocs/goquery"
	"github.com/fwojciec/antdocs/htmltomarkdown"
	antdocshttp "github.com/fwojciec/antdocs/http"
	antdocsslog "github.com/fwojciec/antdocs/slog"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

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
	// Cache directory for fetched pages. Set before calling Run().
	CacheDir string

	// Default path for the export artifact.
	ExportPath string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir:   defaultCacheDir(),
		ExportPath: defaultExportPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("antdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'antdocs --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	fetcher := antdocshttp.NewFetcher(fs.NewCacheStore(m.CacheDir))
	defer fetcher.Close()

	service := catalog.NewService(
		fetcher,
		goquery.NewParser(htmltomarkdown.NewConverter()),
		fs.NewCatalogWriter(),
		catalog.WithBaseURL(cli.BaseURL),
		catalog.WithDefaultExportPath(m.ExportPath),
		catalog.WithLogger(logger),
	)
	deps.Catalog = antdocsslog.NewLoggingCatalogService(service, logger)

	return kongCtx.Run(deps)
}

func defaultCacheDir() string {
	if dir := os.Getenv("ANTDOCS_CACHE"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cache"
	}
	return filepath.Join(home, ".antdocs", "cache")
}

func defaultExportPath() string {
	if path := os.Getenv("ANTDOCS_EXPORT"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("exports", "components.json")
	}
	return filepath.Join(home, ".antdocs", "exports", "components.json")
}
