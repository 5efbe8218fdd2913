package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/antdocs"
)

// maxIntroParagraphs bounds how much leading prose is kept as the
// component intro.
const maxIntroParagraphs = 5

// ParseDetail extracts title, intro, example sections, and tables from
// a component page. Missing regions yield empty values: a page with no
// recognizable content parses into an empty detail, never an error.
func (p *Parser) ParseDetail(markup string) (*antdocs.PageDetail, error) {
	doc, err := newDocument(markup)
	if err != nil {
		return nil, err
	}

	detail := &antdocs.PageDetail{
		Intro:    []string{},
		Examples: []antdocs.Example{},
		Tables:   []antdocs.RawTable{},
	}

	detail.Title = strings.TrimSpace(doc.Find("h1").First().Text())

	// Intro: descriptive paragraphs appearing before the first table,
	// code listing, or demo section.
	doc.Find("p, table, pre, .code-box").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !sel.Is("p") {
			return false
		}
		if len(detail.Intro) >= maxIntroParagraphs {
			return false
		}
		if text := collapseSpace(nodeText(sel)); text != "" {
			detail.Intro = append(detail.Intro, text)
		}
		return true
	})

	detail.Examples = p.parseExamples(doc)

	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		detail.Tables = append(detail.Tables, parseTable(tbl))
	})

	return detail, nil
}

// parseExamples extracts the demo sections. Pages without demo markup
// fall back to bare code listings so usage snippets still surface.
func (p *Parser) parseExamples(doc *goquery.Document) []antdocs.Example {
	examples := []antdocs.Example{}

	doc.Find(".code-box").Each(func(_ int, box *goquery.Selection) {
		ex := antdocs.Example{
			Title:       strings.TrimSpace(box.Find(".code-box-title").First().Text()),
			Description: p.exampleDescription(box),
		}
		if code := box.Find("pre code").First(); code.Length() > 0 {
			ex.Code = strings.Trim(code.Text(), "\n")
		}
		examples = append(examples, ex)
	})
	if len(examples) > 0 {
		return examples
	}

	doc.Find("pre code").Each(func(_ int, code *goquery.Selection) {
		if text := strings.Trim(code.Text(), "\n"); text != "" {
			examples = append(examples, antdocs.Example{Code: text})
		}
	})
	return examples
}

// exampleDescription extracts a demo section's description, preferring
// a markdown rendering of its inline formatting.
func (p *Parser) exampleDescription(box *goquery.Selection) string {
	desc := box.Find(".code-box-description").First()
	if desc.Length() == 0 {
		return ""
	}
	if p.converter != nil {
		if inner, err := desc.Html(); err == nil {
			if md, err := p.converter.Convert(inner); err == nil {
				return strings.TrimSpace(md)
			}
		}
	}
	return collapseSpace(nodeText(desc))
}

// parseTable converts one table element to a RawTable. The header row
// is the thead row when present, else a leading row of th cells. A
// table with neither is degenerate: empty headers, every row data. Rows
// are padded or truncated to the header width.
func parseTable(tbl *goquery.Selection) antdocs.RawTable {
	table := antdocs.RawTable{
		Headers: []string{},
		Rows:    [][]string{},
	}

	var headerTR *goquery.Selection
	if thead := tbl.Find("thead tr").First(); thead.Length() > 0 {
		headerTR = thead
	} else if first := tbl.Find("tr").First(); first.Length() > 0 && first.Find("th").Length() > 0 {
		headerTR = first
	}
	if headerTR != nil {
		headerTR.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			table.Headers = append(table.Headers, collapseSpace(nodeText(cell)))
		})
	}

	rows := tbl.Find("tbody tr")
	if rows.Length() == 0 {
		rows = tbl.Find("tr")
	}
	rows.Each(func(_ int, tr *goquery.Selection) {
		if isSameRow(tr, headerTR) || tr.Closest("thead").Length() > 0 {
			return
		}
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, nodeText(cell))
		})
		if len(cells) == 0 {
			return
		}
		if n := len(table.Headers); n > 0 {
			for len(cells) < n {
				cells = append(cells, "")
			}
			cells = cells[:n]
		}
		table.Rows = append(table.Rows, cells)
	})

	return table
}

func isSameRow(a, b *goquery.Selection) bool {
	if b == nil || len(a.Nodes) == 0 || len(b.Nodes) == 0 {
		return false
	}
	return a.Nodes[0] == b.Nodes[0]
}
