package adminui

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"clinic/api/internal/adminform"
	"clinic/api/internal/content"
	"clinic/api/internal/store"
)

// The service editor reuses the row-group engine for the two list fields a
// clinic service carries: detail lines and detail videos.
var serviceDetailGroup = adminform.RowGroup{
	Name:   "detail",
	Title:  "Detail line",
	Empty:  "No detail lines yet.",
	Fields: []adminform.Field{{Name: "text", Label: "Text", Kind: adminform.Textarea}},
}

var serviceVideoGroup = adminform.RowGroup{
	Name:   "detail-video",
	Title:  "Detail video",
	Empty:  "No videos yet.",
	Fields: []adminform.Field{{Name: "url", Label: "Video URL", Kind: adminform.Text}},
}

var serviceScalars = []struct {
	Name  string
	Label string
}{
	{"name", "Name"},
	{"summary", "Summary"},
	{"image", "Image URL"},
}

func serviceFormValues(item store.Service) url.Values {
	values := url.Values{}
	values.Set("name", item.Name)
	values.Set("summary", item.Summary)
	values.Set("image", item.Image)
	adminform.SetRows(values, serviceDetailGroup, lineRows(serviceDetailGroup, "text", item.Details))
	adminform.SetRows(values, serviceVideoGroup, lineRows(serviceVideoGroup, "url", item.DetailVideos))
	return values
}

func lineRows(g adminform.RowGroup, field string, lines []string) []adminform.Row {
	rows := make([]adminform.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, adminform.Row{field: line})
	}
	return rows
}

func rowLines(rows []adminform.Row, field string) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row[field])
	}
	return lines
}

// servicePatch rebuilds the partial update body from submitted form values.
func servicePatch(values url.Values) ([]byte, error) {
	return json.Marshal(map[string]any{
		"name":         values.Get("name"),
		"summary":      values.Get("summary"),
		"image":        values.Get("image"),
		"details":      content.CleanList(rowLines(adminform.CollectRows(values, serviceDetailGroup), "text")),
		"detailVideos": content.CleanList(rowLines(adminform.CollectRows(values, serviceVideoGroup), "url")),
	})
}

func (h *Handler) handleServiceList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	items, err := h.service.Services(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list services for console")
		http.Error(w, "failed to load services", http.StatusInternalServerError)
		return
	}
	h.render(w, serviceListTmpl, serviceListView{Items: items})
}

func (h *Handler) handleServiceEditor(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		item, err := h.service.Service(r.Context(), id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		h.renderService(w, id, serviceFormValues(item), "")
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		action := adminform.ParseAction(r.PostForm.Get("action"))
		switch action.Kind {
		case adminform.ActionAdd, adminform.ActionRemove:
			group := serviceDetailGroup
			if action.Group == serviceVideoGroup.Name {
				group = serviceVideoGroup
			}
			// Keep blank rows so the remove index matches the rendered rows.
			rows := adminform.CollectAllRows(r.PostForm, group)
			if action.Kind == adminform.ActionAdd {
				rows = adminform.AddRow(group, rows)
			} else {
				rows = adminform.RemoveRow(rows, action.Index)
			}
			adminform.SetRows(r.PostForm, group, rows)
			h.renderService(w, id, r.PostForm, "")
		default:
			patch, err := servicePatch(r.PostForm)
			if err != nil {
				http.Error(w, "invalid form submission", http.StatusBadRequest)
				return
			}
			updated, err := h.service.UpdateService(r.Context(), id, patch)
			if err != nil {
				h.log.Error().Err(err).Str("service", id).Msg("save service")
				h.renderService(w, id, r.PostForm, "Save failed, changes not stored.")
				return
			}
			h.renderService(w, id, serviceFormValues(updated), "Saved.")
		}
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type serviceListView struct {
	Items []store.Service
}

type serviceEditorView struct {
	ID      string
	Flash   string
	Scalars []scalarView
	Groups  []template.HTML
}

func (h *Handler) renderService(w http.ResponseWriter, id string, values url.Values, flash string) {
	view := serviceEditorView{ID: id, Flash: flash}
	for _, field := range serviceScalars {
		view.Scalars = append(view.Scalars, scalarView{
			Label: field.Label,
			Name:  field.Name,
			Value: values.Get(field.Name),
		})
	}
	for _, group := range []adminform.RowGroup{serviceDetailGroup, serviceVideoGroup} {
		markup, err := adminform.Render(group, adminform.CollectAllRows(values, group))
		if err != nil {
			h.log.Error().Err(err).Str("group", group.Name).Msg("render row group")
			http.Error(w, "failed to render editor", http.StatusInternalServerError)
			return
		}
		view.Groups = append(view.Groups, markup)
	}
	h.render(w, serviceEditorTmpl, view)
}

var serviceListTmpl = template.Must(template.New("services").Parse(`<!doctype html>
<html><head><title>Services</title></head><body>
<h1>Services</h1>
<ul>
{{range .Items}}<li><a href="/admin/services/{{.ID}}">{{.Name}}</a></li>
{{end}}</ul>
<p><a href="/admin">Back to pages</a></p>
</body></html>
`))

var serviceEditorTmpl = template.Must(template.New("service").Parse(`<!doctype html>
<html><head><title>Edit service</title></head><body>
<h1>Edit service</h1>
{{if .Flash}}<p class="flash">{{.Flash}}</p>{{end}}
<form method="post" action="/admin/services/{{.ID}}">
{{range .Scalars}}<label>{{.Label}} <input type="text" name="{{.Name}}" value="{{.Value}}"></label>
{{end}}
{{range .Groups}}{{.}}
{{end}}<button type="submit" name="action" value="save">Save</button>
</form>
<p><a href="/admin/services">Back to services</a></p>
</body></html>
`))
