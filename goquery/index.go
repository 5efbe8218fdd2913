package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/antdocs"
)

// leadingASCII extracts the English component name from a bilingual
// title like "Button 按钮".
var leadingASCII = regexp.MustCompile(`^[A-Za-z0-9]+`)

// ParseIndex extracts the component listing from the overview page.
// Two structures are scanned: the overview cards in the page body and
// the component links in the side menu. Entries are deduplicated by
// lowercase name, preferring the occurrence with the longer display
// title (the card titles carry the localized suffix).
func (p *Parser) ParseIndex(markup string, baseURL string) ([]antdocs.ComponentRef, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, antdocs.Errorf(antdocs.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := newDocument(markup)
	if err != nil {
		return nil, err
	}

	type entry struct {
		ref        antdocs.ComponentRef
		displayLen int
	}

	// Track first-occurrence order for stable output.
	seen := make(map[string]int)
	var entries []entry

	add := func(display, href string) {
		name := normalizeName(display)
		if name == "" || href == "" {
			return
		}
		resolved := resolveComponentURL(base, href)
		if resolved == "" {
			return
		}
		e := entry{
			ref:        antdocs.ComponentRef{Name: name, URL: resolved},
			displayLen: len(display),
		}
		key := strings.ToLower(name)
		if idx, ok := seen[key]; ok {
			if e.displayLen > entries[idx].displayLen {
				entries[idx] = e
			}
			return
		}
		seen[key] = len(entries)
		entries = append(entries, e)
	}

	// Overview cards; the anchor usually wraps the card.
	doc.Find(".components-overview-card").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(".components-overview-title").First().Text())
		if title == "" {
			return
		}
		link := card.Closest("a")
		if link.Length() == 0 {
			link = card.Find("a[href]").First()
		}
		href, _ := link.Attr("href")
		add(title, href)
	})

	// Side menu entries (English + Chinese spans).
	doc.Find(`ul.ant-menu li a[href*="/components/"]`).Each(func(_ int, a *goquery.Selection) {
		var display string
		a.Find("span").Each(func(_ int, span *goquery.Selection) {
			display += strings.TrimSpace(span.Text())
		})
		if display == "" {
			display = strings.TrimSpace(a.Text())
		}
		href, _ := a.Attr("href")
		add(display, href)
	})

	if len(entries) == 0 {
		return nil, antdocs.Errorf(antdocs.EPARSE, "component listing not found in overview page")
	}

	refs := make([]antdocs.ComponentRef, len(entries))
	for i, e := range entries {
		refs[i] = e.ref
	}
	return refs, nil
}

// normalizeName reduces a display title to its canonical identifier:
// the leading ASCII word, or the first whitespace-separated token when
// there is none.
func normalizeName(display string) string {
	display = strings.TrimSpace(display)
	if m := leadingASCII.FindString(display); m != "" {
		return m
	}
	fields := strings.Fields(display)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// resolveComponentURL resolves href against base and keeps only
// absolute HTTP(S) links into the component section. Section headers
// and external links resolve to "" and are skipped by the caller.
func resolveComponentURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	if resolved.Host != base.Host {
		return ""
	}
	if !strings.Contains(resolved.Path, "/components/") {
		return ""
	}
	return resolved.String()
}
