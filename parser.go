package antdocs

// PageParser turns raw documentation markup into structure.
// Implementations must normalize degenerate input: a missing title,
// intro, example, or header row yields empty values, not an error.
type PageParser interface {
	// ParseIndex extracts the component listing from the overview page,
	// resolving relative links against baseURL. Entries that are not
	// single-component links are skipped by structural position.
	// Returns EPARSE only when the listing structure is entirely
	// absent; a partial listing is returned as-is.
	ParseIndex(markup string, baseURL string) ([]ComponentRef, error)

	// ParseDetail extracts title, intro paragraphs, example sections,
	// and every table from a component page, in document order.
	ParseDetail(markup string) (*PageDetail, error)
}

// Converter converts HTML fragments to Markdown. Used for example
// descriptions, which carry inline formatting worth preserving.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
