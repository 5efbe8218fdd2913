// Package mcp exposes the catalog service as MCP tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/antdocs"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler adapts antdocs.CatalogService to MCP tool calls. Service
// errors surface as tool error results carrying the error message, not
// as protocol errors.
type Handler struct {
	service antdocs.CatalogService
}

// NewHandler creates a new Handler.
func NewHandler(service antdocs.CatalogService) *Handler {
	return &Handler{service: service}
}

// ListComponentsRequest is the argument payload for list_components.
type ListComponentsRequest struct {
	Force bool `json:"force"` // Re-fetch the index page
}

// GetComponentRequest is the argument payload for get_component and
// get_component_props.
type GetComponentRequest struct {
	Name  string `json:"name"`  // Component name, e.g. "Button"
	Force bool   `json:"force"` // Re-fetch the component page
}

// SearchComponentsRequest is the argument payload for search_components.
type SearchComponentsRequest struct {
	Query string `json:"query"` // Substring to match against names
}

// ExportAllRequest is the argument payload for export_all.
type ExportAllRequest struct {
	Force    bool   `json:"force"`    // Re-fetch every page
	Filepath string `json:"filepath"` // Artifact path; empty uses the server default
}

// ExportAllResponse summarizes an export without echoing every record.
type ExportAllResponse struct {
	Count       int    `json:"count"`
	GeneratedAt string `json:"generatedAt"`
	Filepath    string `json:"filepath,omitempty"`
}

// ComponentPropsResponse is the payload for get_component_props.
type ComponentPropsResponse struct {
	Component string         `json:"component"`
	Count     int            `json:"count"`
	Props     []antdocs.Prop `json:"props"`
}

// ListComponents handles the list_components tool.
func (h *Handler) ListComponents(ctx context.Context, request mcp.CallToolRequest, args ListComponentsRequest) (*mcp.CallToolResult, error) {
	refs, err := h.service.ListComponents(ctx, args.Force)
	if err != nil {
		return mcp.NewToolResultError(antdocs.ErrorMessage(err)), nil
	}
	return jsonResult(refs)
}

// GetComponent handles the get_component tool.
func (h *Handler) GetComponent(ctx context.Context, request mcp.CallToolRequest, args GetComponentRequest) (*mcp.CallToolResult, error) {
	if args.Name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	rec, err := h.service.GetComponent(ctx, args.Name, args.Force)
	if err != nil {
		return mcp.NewToolResultError(antdocs.ErrorMessage(err)), nil
	}
	return jsonResult(rec)
}

// SearchComponents handles the search_components tool.
func (h *Handler) SearchComponents(ctx context.Context, request mcp.CallToolRequest, args SearchComponentsRequest) (*mcp.CallToolResult, error) {
	refs, err := h.service.SearchComponents(ctx, args.Query)
	if err != nil {
		return mcp.NewToolResultError(antdocs.ErrorMessage(err)), nil
	}
	return jsonResult(refs)
}

// ExportAll handles the export_all tool.
func (h *Handler) ExportAll(ctx context.Context, request mcp.CallToolRequest, args ExportAllRequest) (*mcp.CallToolResult, error) {
	catalog, err := h.service.ExportAll(ctx, args.Force, args.Filepath)
	if err != nil {
		return mcp.NewToolResultError(antdocs.ErrorMessage(err)), nil
	}
	return jsonResult(ExportAllResponse{
		Count:       catalog.Count,
		GeneratedAt: catalog.GeneratedAt.Format(time.RFC3339),
		Filepath:    args.Filepath,
	})
}

// GetComponentProps handles the get_component_props tool.
func (h *Handler) GetComponentProps(ctx context.Context, request mcp.CallToolRequest, args GetComponentRequest) (*mcp.CallToolResult, error) {
	if args.Name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}
	rec, err := h.service.GetComponent(ctx, args.Name, args.Force)
	if err != nil {
		return mcp.NewToolResultError(antdocs.ErrorMessage(err)), nil
	}
	props := antdocs.FlattenProps(rec)
	return jsonResult(ComponentPropsResponse{
		Component: rec.Name,
		Count:     len(props),
		Props:     props,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
