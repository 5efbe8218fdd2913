// Package antdocs extracts structured component documentation from the
// Ant Design documentation site. It fetches component pages through a
// local cache, parses the markup into normalized records (title, intro,
// usage examples, API tables classified into props/events/methods), and
// serves the result to MCP clients or exports it as a single JSON
// catalog.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, fs/).
package antdocs
