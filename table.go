package antdocs

// TableCategory is the semantic category assigned to an API table.
type TableCategory string

// Table categories. Every table classifies into exactly one.
const (
	CategoryProps   TableCategory = "props"
	CategoryEvents  TableCategory = "events"
	CategoryMethods TableCategory = "methods"
	CategoryOther   TableCategory = "other"
)

// Categories lists all table categories in summary order.
func Categories() []TableCategory {
	return []TableCategory{CategoryProps, CategoryEvents, CategoryMethods, CategoryOther}
}

// RawTable is a table extracted verbatim from a page, before
// classification. Headers come from the marked header row; a table with
// no identifiable header row has empty Headers and every row treated as
// data (a degenerate table).
type RawTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ClassifiedTable is a RawTable tagged with its semantic category.
// Classification never mutates the underlying table.
type ClassifiedTable struct {
	Category TableCategory `json:"category"`
	Headers  []string      `json:"headers"`
	Rows     [][]string    `json:"rows"`
}
