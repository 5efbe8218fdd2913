package mcp

import (
	"github.com/fwojciec/antdocs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName identifies this MCP server to clients.
const ServerName = "Ant Design Docs MCP"

// NewServer creates an MCP server exposing the catalog operations as
// tools. Transport selection (stdio vs HTTP) is the caller's concern.
func NewServer(service antdocs.CatalogService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
	)

	h := NewHandler(service)

	s.AddTool(mcp.NewTool("list_components",
		mcp.WithDescription("List Ant Design components from the overview page"),
		mcp.WithBoolean("force",
			mcp.Description("Re-fetch the index page instead of using the cache"),
		),
	), mcp.NewTypedToolHandler(h.ListComponents))

	s.AddTool(mcp.NewTool("get_component",
		mcp.WithDescription("Get structured documentation for a component by name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name, e.g. \"Button\""),
		),
		mcp.WithBoolean("force",
			mcp.Description("Re-fetch the component page instead of using the cache"),
		),
	), mcp.NewTypedToolHandler(h.GetComponent))

	s.AddTool(mcp.NewTool("search_components",
		mcp.WithDescription("Search components by substring in the name"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Substring to match; empty returns all components"),
		),
	), mcp.NewTypedToolHandler(h.SearchComponents))

	s.AddTool(mcp.NewTool("export_all",
		mcp.WithDescription("Fetch every component page and persist the structured catalog as JSON"),
		mcp.WithBoolean("force",
			mcp.Description("Re-fetch every page instead of using the cache"),
		),
		mcp.WithString("filepath",
			mcp.Description("Artifact path; empty uses the server default"),
		),
	), mcp.NewTypedToolHandler(h.ExportAll))

	s.AddTool(mcp.NewTool("get_component_props",
		mcp.WithDescription("Return the flattened, normalized props list for a component"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name, e.g. \"Button\""),
		),
		mcp.WithBoolean("force",
			mcp.Description("Re-fetch the component page instead of using the cache"),
		),
	), mcp.NewTypedToolHandler(h.GetComponentProps))

	return s
}
