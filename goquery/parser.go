// Package goquery implements antdocs.PageParser using CSS selectors
// over the parsed markup. The selectors target the Ant Design 4.x
// documentation template; they are the compatibility boundary of the
// whole pipeline and deliberately not generalized beyond it.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/antdocs"
	"golang.org/x/net/html"
)

// Ensure Parser implements antdocs.PageParser at compile time.
var _ antdocs.PageParser = (*Parser)(nil)

// Parser extracts structure from documentation markup. The converter is
// used for example descriptions, which carry inline formatting; when it
// fails the plain text is kept instead.
type Parser struct {
	converter antdocs.Converter
}

// NewParser creates a new Parser. converter may be nil, in which case
// example descriptions are extracted as plain text.
func NewParser(converter antdocs.Converter) *Parser {
	return &Parser{converter: converter}
}

func newDocument(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, antdocs.Errorf(antdocs.EPARSE, "parsing markup: %v", err)
	}
	return doc, nil
}

// nodeText extracts the text of a selection with <br> elements rendered
// as newlines, mirroring how table cells read visually. Block
// boundaries inside a cell otherwise collapse into single spaces.
func nodeText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(&b, node)
	}
	return strings.TrimSpace(b.String())
}

func writeNodeText(b *strings.Builder, node *html.Node) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode && node.Data == "br" {
		b.WriteString("\n")
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(b, c)
	}
}

// collapseSpace collapses structural whitespace runs into single
// spaces while preserving intentional newlines from <br> handling.
func collapseSpace(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
