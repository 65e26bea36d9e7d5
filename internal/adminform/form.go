// Package adminform renders repeatable row groups for the admin pages and
// reads them back out of submitted form values. Rows travel through the form
// as indexed inputs plus a hidden count marker, so the server needs no state
// between render and submit.
package adminform

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
)

type FieldKind int

const (
	Text FieldKind = iota
	Textarea
	Number
)

// Field describes one column of a row group. Name is the suffix of the input
// name: a field "icon" in group "kidney-stat" renders as kidney-stat-icon-0,
// kidney-stat-icon-1 and so on.
type Field struct {
	Name        string
	Label       string
	Kind        FieldKind
	Placeholder string
}

// RowGroup describes a repeatable section of a page form.
type RowGroup struct {
	Name   string
	Title  string
	Empty  string
	Fields []Field
}

// Row holds one row's values keyed by field name.
type Row map[string]string

func (g RowGroup) countKey() string { return g.Name + "-count" }

func (g RowGroup) inputName(field string, index int) string {
	return fmt.Sprintf("%s-%s-%d", g.Name, field, index)
}

// CollectAllRows reads the group's rows out of submitted form values,
// keeping all-blank rows. The hidden count marker bounds the scan; indices
// past it are ignored even if present. The add/remove actions and the
// re-render path use this form so a row's index always means the row the
// admin sees, blank or not.
func CollectAllRows(values url.Values, g RowGroup) []Row {
	count, err := strconv.Atoi(values.Get(g.countKey()))
	if err != nil || count < 0 {
		count = 0
	}
	rows := make([]Row, 0, count)
	for i := 0; i < count; i++ {
		row := Row{}
		for _, field := range g.Fields {
			row[field.Name] = values.Get(g.inputName(field.Name, i))
		}
		rows = append(rows, row)
	}
	return rows
}

// CollectRows is CollectAllRows with the save-path filter applied: rows with
// every field blank are dropped, and the survivors are returned in order with
// no index gaps.
func CollectRows(values url.Values, g RowGroup) []Row {
	all := CollectAllRows(values, g)
	rows := make([]Row, 0, len(all))
	for _, row := range all {
		blank := true
		for _, field := range g.Fields {
			if strings.TrimSpace(row[field.Name]) != "" {
				blank = false
				break
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows
}

// SetRows writes rows into form values as the exact inverse of CollectRows.
func SetRows(values url.Values, g RowGroup, rows []Row) {
	values.Set(g.countKey(), strconv.Itoa(len(rows)))
	for i, row := range rows {
		for _, field := range g.Fields {
			values.Set(g.inputName(field.Name, i), row[field.Name])
		}
	}
}

// Values serializes rows into a fresh url.Values.
func Values(g RowGroup, rows []Row) url.Values {
	values := url.Values{}
	SetRows(values, g, rows)
	return values
}

// AddRow appends a blank row.
func AddRow(g RowGroup, rows []Row) []Row {
	row := Row{}
	for _, field := range g.Fields {
		row[field.Name] = ""
	}
	return append(rows, row)
}

// RemoveRow deletes the row at index. Out-of-range indices are a no-op, so a
// stale submit cannot panic the handler. Remaining rows keep their order and
// are re-indexed on the next render.
func RemoveRow(rows []Row, index int) []Row {
	if index < 0 || index >= len(rows) {
		return rows
	}
	return append(rows[:index:index], rows[index+1:]...)
}

var groupTmpl = template.Must(template.New("rowgroup").Parse(`<fieldset class="row-group" data-group="{{.Group.Name}}">
<legend>{{.Group.Title}}</legend>
<input type="hidden" name="{{.Group.Name}}-count" value="{{len .Rows}}">
{{if not .Rows}}<p class="row-group-empty">{{.Group.Empty}}</p>{{end}}
{{range $i, $row := .Rows}}<div class="row" data-index="{{$i}}">
{{range $f := $.Group.Fields}}<label>{{$f.Label}}
{{if eq $f.Kind 1}}<textarea name="{{$.Group.Name}}-{{$f.Name}}-{{$i}}" placeholder="{{$f.Placeholder}}">{{index $row $f.Name}}</textarea>{{else}}<input type="{{if eq $f.Kind 2}}number{{else}}text{{end}}" {{if eq $f.Kind 2}}step="any" {{end}}name="{{$.Group.Name}}-{{$f.Name}}-{{$i}}" value="{{index $row $f.Name}}" placeholder="{{$f.Placeholder}}">{{end}}
</label>
{{end}}<button type="submit" name="action" value="remove:{{$.Group.Name}}:{{$i}}">Remove</button>
</div>
{{end}}<button type="submit" name="action" value="add:{{.Group.Name}}">Add {{.Group.Title}}</button>
</fieldset>
`))

// Render emits the group's markup. Inputs are re-numbered from the slice, so
// indices are always contiguous from zero regardless of earlier removals.
func Render(g RowGroup, rows []Row) (template.HTML, error) {
	var b strings.Builder
	err := groupTmpl.Execute(&b, struct {
		Group RowGroup
		Rows  []Row
	}{g, rows})
	if err != nil {
		return "", fmt.Errorf("render row group %s: %w", g.Name, err)
	}
	return template.HTML(b.String()), nil
}
