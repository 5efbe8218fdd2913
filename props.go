package antdocs

import "strings"

// Prop is one flattened row from a props table, with column names
// normalized through the header synonym map. Columns with no known
// synonym land in Extra under their original header.
type Prop struct {
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Type        string            `json:"type,omitempty"`
	Default     string            `json:"default,omitempty"`
	Version     string            `json:"version,omitempty"`
	Options     string            `json:"options,omitempty"`
	Required    *bool             `json:"required,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// headerSynonyms maps the header vocabulary seen across documentation
// versions onto canonical field names.
var headerSynonyms = map[string]string{
	"参数": "name", "属性": "name", "属性名": "name", "名称": "name",
	"配置项": "name", "参数名": "name", "字段": "name", "prop": "name",
	"property": "name", "可配置项": "name",
	"说明": "description", "描述": "description", "备注": "description",
	"含义": "description", "description": "description",
	"类型": "type", "type": "type", "数据类型": "type",
	"默认值": "default", "默认": "default", "缺省值": "default", "default": "default",
	"版本": "version", "since": "version", "version": "version",
	"可选值": "options", "选项": "options", "可选": "options", "枚举": "options",
	"是否必填": "required", "必填": "required", "必选": "required", "是否必选": "required",
	"required": "required",
}

var (
	requiredTrueTokens  = []string{"是", "必填", "必选", "true", "必须"}
	requiredFalseTokens = []string{"否", "可选", "false", "选填"}
)

// FlattenProps flattens every props table of a record into one sequence
// of normalized rows, preserving table order and row order. Cells beyond
// the header width are ignored; missing cells stay empty.
func FlattenProps(rec *ComponentRecord) []Prop {
	props := []Prop{}
	for _, tbl := range rec.Props {
		for _, row := range tbl.Rows {
			props = append(props, flattenRow(tbl.Headers, row))
		}
	}
	return props
}

func flattenRow(headers []string, cells []string) Prop {
	var p Prop
	for i, h := range headers {
		if i >= len(cells) {
			break
		}
		value := strings.TrimSpace(cells[i])
		key := strings.ToLower(strings.TrimSpace(h))
		switch headerSynonyms[key] {
		case "name":
			// Name cells sometimes carry trailing annotation lines.
			p.Name = strings.TrimSpace(strings.SplitN(value, "\n", 2)[0])
		case "description":
			p.Description = value
		case "type":
			p.Type = value
		case "default":
			p.Default = value
		case "version":
			p.Version = value
		case "options":
			p.Options = value
		case "required":
			p.Required = parseRequired(value)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[strings.TrimSpace(h)] = value
		}
	}
	return p
}

// parseRequired normalizes the assorted yes/no spellings used in
// required columns. Unrecognized values stay unset.
func parseRequired(value string) *bool {
	for _, tok := range requiredTrueTokens {
		if strings.Contains(value, tok) {
			t := true
			return &t
		}
	}
	for _, tok := range requiredFalseTokens {
		if strings.Contains(value, tok) {
			f := false
			return &f
		}
	}
	return nil
}
