package antdocs

import "strings"

// classifyRule is one step of the classification chain: a named
// predicate over a normalized header set, paired with the category it
// assigns. Rules are evaluated in fixed order; the first match wins.
type classifyRule struct {
	name     string
	category TableCategory
	match    func(headers map[string]bool) bool
}

// Header vocabularies. Matching is by exact normalized header name, not
// substring: substring heuristics drift with template wording, exact
// column names do not. These are tuned to one documentation version and
// form a deliberate compatibility boundary.
var (
	propsHeadersCN = []string{"参数", "说明", "类型", "默认值"}
	propsHeadersEN = []string{"property", "description", "type", "default"}

	eventHeaders       = []string{"事件名称", "event name", "event"}
	methodHeaders      = []string{"方法名", "method", "method name"}
	descriptionHeaders = []string{"说明", "description"}
)

var classifyRules = []classifyRule{
	{
		name:     "props-header-set",
		category: CategoryProps,
		match: func(headers map[string]bool) bool {
			return containsAll(headers, propsHeadersCN) || containsAll(headers, propsHeadersEN)
		},
	},
	{
		name:     "event-name-column",
		category: CategoryEvents,
		match: func(headers map[string]bool) bool {
			return containsAny(headers, eventHeaders)
		},
	},
	{
		name:     "method-name-column",
		category: CategoryMethods,
		match: func(headers map[string]bool) bool {
			return containsAny(headers, methodHeaders) && containsAny(headers, descriptionHeaders)
		},
	},
	{
		name:     "degenerate-headerless",
		category: CategoryOther,
		match: func(headers map[string]bool) bool {
			return len(headers) == 0
		},
	},
}

// Classify assigns a semantic category to a table based on its header
// row. It is a total pure function: every table maps to exactly one
// category, and the same table always maps to the same category. Tables
// matched by no rule fall through to CategoryOther (precision over
// recall).
func Classify(table RawTable) TableCategory {
	headers := normalizeHeaders(table.Headers)
	for _, rule := range classifyRules {
		if rule.match(headers) {
			return rule.category
		}
	}
	return CategoryOther
}

// normalizeHeaders lowercases and trims header cells into a set.
// Empty cells are dropped so a row of blank <th> elements still counts
// as degenerate.
func normalizeHeaders(headers []string) map[string]bool {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			set[h] = true
		}
	}
	return set
}

func containsAll(headers map[string]bool, want []string) bool {
	for _, w := range want {
		if !headers[w] {
			return false
		}
	}
	return true
}

func containsAny(headers map[string]bool, want []string) bool {
	for _, w := range want {
		if headers[w] {
			return true
		}
	}
	return false
}
