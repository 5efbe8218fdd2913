package antdocs

import "time"

// AssembleRecord combines a parsed page detail with its ref into a
// normalized component record. Tables are partitioned through Classify,
// preserving document order within each bucket; TableSummary is derived
// from the bucket lengths and always carries all four categories, even
// at zero. Assembly never fails: a well-formed detail with empty fields
// produces a record with empty fields.
func AssembleRecord(ref ComponentRef, detail *PageDetail, fetchedAt time.Time) *ComponentRecord {
	rec := &ComponentRecord{
		Name:        ref.Name,
		Title:       detail.Title,
		Intro:       detail.Intro,
		Props:       []ClassifiedTable{},
		Events:      []ClassifiedTable{},
		Methods:     []ClassifiedTable{},
		OtherTables: []ClassifiedTable{},
		Examples:    detail.Examples,
		SourceURL:   ref.URL,
		FetchedAt:   fetchedAt,
	}
	if rec.Intro == nil {
		rec.Intro = []string{}
	}
	if rec.Examples == nil {
		rec.Examples = []Example{}
	}

	for _, tbl := range detail.Tables {
		ct := ClassifiedTable{
			Category: Classify(tbl),
			Headers:  tbl.Headers,
			Rows:     tbl.Rows,
		}
		switch ct.Category {
		case CategoryProps:
			rec.Props = append(rec.Props, ct)
		case CategoryEvents:
			rec.Events = append(rec.Events, ct)
		case CategoryMethods:
			rec.Methods = append(rec.Methods, ct)
		default:
			rec.OtherTables = append(rec.OtherTables, ct)
		}
	}

	rec.TableSummary = map[string]int{
		string(CategoryProps):   len(rec.Props),
		string(CategoryEvents):  len(rec.Events),
		string(CategoryMethods): len(rec.Methods),
		string(CategoryOther):   len(rec.OtherTables),
	}

	return rec
}
