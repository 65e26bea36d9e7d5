// Package adminui serves the server-rendered admin console: login, the page
// editors built on repeatable row groups, and the collection dashboards.
package adminui

import (
	"net/url"
	"strconv"
	"strings"

	"clinic/api/internal/adminform"
	"clinic/api/internal/content"
)

// ScalarField binds one top-level form input to a dotted location in the page
// document. The input name is the path joined with dashes: hero.title renders
// as name="hero-title".
type ScalarField struct {
	Label    string
	Path     []string
	Textarea bool
}

func (f ScalarField) InputName() string { return strings.Join(f.Path, "-") }

// GroupBinding ties a repeatable row group to the list it edits inside the
// document. Row field names double as the object keys of the list items.
type GroupBinding struct {
	Group adminform.RowGroup
	Path  []string
}

// Editor is the full form definition for one singleton page.
type Editor struct {
	Page    string
	Title   string
	Scalars []ScalarField
	Groups  []GroupBinding
}

func (e Editor) groupBinding(name string) (GroupBinding, bool) {
	for _, binding := range e.Groups {
		if binding.Group.Name == name {
			return binding, true
		}
	}
	return GroupBinding{}, false
}

// docGet walks the path and returns the value as a form string. String lists
// come back newline-joined, which the sanitizer splits again on save.
func docGet(doc map[string]any, path []string) string {
	current := doc
	for _, key := range path[:len(path)-1] {
		child, _ := current[key].(map[string]any)
		if child == nil {
			return ""
		}
		current = child
	}
	switch value := current[path[len(path)-1]].(type) {
	case string:
		return value
	case []any:
		lines := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				lines = append(lines, s)
			}
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

// docSet walks the path, creating intermediate objects, and stores the value.
func docSet(doc map[string]any, path []string, value any) {
	current := doc
	for _, key := range path[:len(path)-1] {
		child, _ := current[key].(map[string]any)
		if child == nil {
			child = map[string]any{}
			current[key] = child
		}
		current = child
	}
	current[path[len(path)-1]] = value
}

// rowsFromDoc reads the list at the binding's path into form rows. List-valued
// item fields (symptom items, procedure focus points) become newline-joined
// textarea values.
func rowsFromDoc(doc map[string]any, binding GroupBinding) []adminform.Row {
	current := doc
	for _, key := range binding.Path[:len(binding.Path)-1] {
		child, _ := current[key].(map[string]any)
		if child == nil {
			return nil
		}
		current = child
	}
	items, _ := current[binding.Path[len(binding.Path)-1]].([]any)
	rows := make([]adminform.Row, 0, len(items))
	for _, raw := range items {
		item, _ := raw.(map[string]any)
		row := adminform.Row{}
		for _, field := range binding.Group.Fields {
			switch value := item[field.Name].(type) {
			case string:
				row[field.Name] = value
			case float64:
				row[field.Name] = trimFloat(value)
			case []any:
				lines := make([]string, 0, len(value))
				for _, entry := range value {
					if s, ok := entry.(string); ok {
						lines = append(lines, s)
					}
				}
				row[field.Name] = strings.Join(lines, "\n")
			default:
				row[field.Name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormValues serializes a sanitized document into the form's url.Values.
func (e Editor) FormValues(doc map[string]any) url.Values {
	values := url.Values{}
	for _, field := range e.Scalars {
		values.Set(field.InputName(), docGet(doc, field.Path))
	}
	for _, binding := range e.Groups {
		adminform.SetRows(values, binding.Group, rowsFromDoc(doc, binding))
	}
	return values
}

// Document rebuilds the raw page document from submitted form values. The
// result still goes through the sanitizer on save, so values stay strings
// here; coercion is the sanitizer's job.
func (e Editor) Document(values url.Values) map[string]any {
	doc := map[string]any{}
	for _, field := range e.Scalars {
		docSet(doc, field.Path, values.Get(field.InputName()))
	}
	for _, binding := range e.Groups {
		rows := adminform.CollectRows(values, binding.Group)
		items := make([]any, 0, len(rows))
		for _, row := range rows {
			item := map[string]any{}
			for _, field := range binding.Group.Fields {
				item[field.Name] = row[field.Name]
			}
			items = append(items, item)
		}
		docSet(doc, binding.Path, items)
	}
	return doc
}

func text(name, label string) adminform.Field {
	return adminform.Field{Name: name, Label: label, Kind: adminform.Text}
}

func textarea(name, label string) adminform.Field {
	return adminform.Field{Name: name, Label: label, Kind: adminform.Textarea}
}

func number(name, label string) adminform.Field {
	return adminform.Field{Name: name, Label: label, Kind: adminform.Number}
}

var ctaScalars = []ScalarField{
	{Label: "CTA heading", Path: []string{"cta", "heading"}},
	{Label: "CTA description", Path: []string{"cta", "description"}, Textarea: true},
	{Label: "CTA button text", Path: []string{"cta", "buttonText"}},
	{Label: "CTA button link", Path: []string{"cta", "buttonLink"}},
}

var homeEditor = Editor{
	Page:  content.PageHome,
	Title: "Home page",
	Scalars: append([]ScalarField{
		{Label: "Hero title", Path: []string{"hero", "title"}},
		{Label: "Hero subtitle", Path: []string{"hero", "subtitle"}, Textarea: true},
		{Label: "Primary button text", Path: []string{"hero", "ctaPrimaryText"}},
		{Label: "Primary button link", Path: []string{"hero", "ctaPrimaryLink"}},
		{Label: "Secondary button text", Path: []string{"hero", "ctaSecondaryText"}},
		{Label: "Secondary button link", Path: []string{"hero", "ctaSecondaryLink"}},
		{Label: "Background video URL", Path: []string{"hero", "backgroundVideo"}},
		{Label: "Features title", Path: []string{"features", "title"}},
		{Label: "Features subtitle", Path: []string{"features", "subtitle"}},
		{Label: "Transplant badge", Path: []string{"transplant", "badge"}},
		{Label: "Transplant heading", Path: []string{"transplant", "heading"}},
		{Label: "Transplant description", Path: []string{"transplant", "description"}, Textarea: true},
		{Label: "Care journey title", Path: []string{"transplant", "careJourneyTitle"}},
		{Label: "Care journey items (one per line)", Path: []string{"transplant", "careJourneyItems"}, Textarea: true},
		{Label: "Facility badge", Path: []string{"facility", "badge"}},
		{Label: "Facility heading", Path: []string{"facility", "heading"}},
		{Label: "Facility description", Path: []string{"facility", "description"}, Textarea: true},
		{Label: "Facility video URL", Path: []string{"facility", "videoUrl"}},
		{Label: "Facility video description", Path: []string{"facility", "videoDescription"}},
		{Label: "Showcase title", Path: []string{"showcase", "title"}},
		{Label: "Showcase subtitle", Path: []string{"showcase", "subtitle"}},
	}, ctaScalars...),
	Groups: []GroupBinding{
		{
			Group: adminform.RowGroup{
				Name:   "feature",
				Title:  "Feature card",
				Empty:  "No feature cards yet.",
				Fields: []adminform.Field{text("badge", "Badge"), text("title", "Title"), textarea("text", "Text")},
			},
			Path: []string{"features", "items"},
		},
		{
			Group: adminform.RowGroup{
				Name:   "transplant-stat",
				Title:  "Transplant stat",
				Empty:  "No stats yet.",
				Fields: []adminform.Field{text("value", "Value"), text("label", "Label")},
			},
			Path: []string{"transplant", "stats"},
		},
		{
			Group: adminform.RowGroup{
				Name:   "transplant-feature",
				Title:  "Transplant feature",
				Empty:  "No features yet.",
				Fields: []adminform.Field{text("title", "Title"), textarea("description", "Description")},
			},
			Path: []string{"transplant", "features"},
		},
	},
}

var kidneyEditor = Editor{
	Page:  content.PageKidney,
	Title: "Kidney department",
	Scalars: append([]ScalarField{
		{Label: "Hero badge", Path: []string{"hero", "badge"}},
		{Label: "Hero title", Path: []string{"hero", "title"}},
		{Label: "Hero subtitle", Path: []string{"hero", "subtitle"}, Textarea: true},
		{Label: "Hero background image", Path: []string{"hero", "backgroundImage"}},
		{Label: "Procedures title", Path: []string{"procedures", "title"}},
		{Label: "Procedures subtitle", Path: []string{"procedures", "subtitle"}},
		{Label: "Procedures footnote", Path: []string{"procedures", "footnote"}},
		{Label: "Journey title", Path: []string{"journey", "title"}},
		{Label: "Journey subtitle", Path: []string{"journey", "subtitle"}},
		{Label: "Journey note", Path: []string{"journey", "note"}},
		{Label: "Symptoms title", Path: []string{"symptoms", "title"}},
		{Label: "Symptoms subtitle", Path: []string{"symptoms", "subtitle"}},
		{Label: "Symptoms CTA text", Path: []string{"symptoms", "cta", "text"}},
		{Label: "Symptoms CTA link", Path: []string{"symptoms", "cta", "link"}},
		{Label: "Support title", Path: []string{"support", "title"}},
	}, ctaScalars...),
	Groups: []GroupBinding{
		{
			Group: adminform.RowGroup{
				Name:  "kidney-stat",
				Title: "Department stat",
				Empty: "No stats yet.",
				Fields: []adminform.Field{
					text("icon", "Icon"), text("value", "Value"),
					text("label", "Label"), textarea("description", "Description"),
				},
			},
			Path: []string{"stats"},
		},
		{
			Group: adminform.RowGroup{
				Name:  "procedure",
				Title: "Procedure",
				Empty: "No procedures yet.",
				Fields: []adminform.Field{
					text("icon", "Icon"), text("name", "Name"),
					textarea("description", "Description"),
					textarea("focusPoints", "Focus points (one per line)"),
				},
			},
			Path: []string{"procedures", "items"},
		},
		{
			Group: adminform.RowGroup{
				Name:   "journey-step",
				Title:  "Journey step",
				Empty:  "No steps yet.",
				Fields: []adminform.Field{text("title", "Title"), textarea("description", "Description")},
			},
			Path: []string{"journey", "steps"},
		},
		{
			Group: adminform.RowGroup{
				Name:  "symptom-category",
				Title: "Symptom category",
				Empty: "No categories yet.",
				Fields: []adminform.Field{
					text("title", "Title"),
					textarea("items", "Symptoms (one per line)"),
				},
			},
			Path: []string{"symptoms", "categories"},
		},
		{
			Group: adminform.RowGroup{
				Name:  "support-pillar",
				Title: "Support pillar",
				Empty: "No pillars yet.",
				Fields: []adminform.Field{
					text("icon", "Icon"), text("title", "Title"), textarea("description", "Description"),
				},
			},
			Path: []string{"support", "pillars"},
		},
		{
			Group: adminform.RowGroup{
				Name:  "support-resource",
				Title: "Support resource",
				Empty: "No resources yet.",
				Fields: []adminform.Field{
					text("title", "Title"), text("link", "Link"), textarea("description", "Description"),
				},
			},
			Path: []string{"support", "resources"},
		},
	},
}

var tourismEditor = Editor{
	Page:  content.PageTourism,
	Title: "Medical tourism",
	Scalars: append([]ScalarField{
		{Label: "Badge", Path: []string{"healthGateways", "badge"}},
		{Label: "Title", Path: []string{"healthGateways", "title"}},
		{Label: "Description", Path: []string{"healthGateways", "description"}, Textarea: true},
		{Label: "Contact heading", Path: []string{"healthGateways", "contact", "heading"}},
		{Label: "Contact email", Path: []string{"healthGateways", "contact", "email"}},
		{Label: "Contact phone", Path: []string{"healthGateways", "contact", "phone"}},
		{Label: "Contact website", Path: []string{"healthGateways", "contact", "website"}},
		{Label: "Process title", Path: []string{"process", "title"}},
		{Label: "Map title", Path: []string{"map", "title"}},
		{Label: "Map description", Path: []string{"map", "description"}, Textarea: true},
	}, ctaScalars...),
	Groups: []GroupBinding{
		{
			Group: adminform.RowGroup{
				Name:  "gateway-service",
				Title: "Gateway service",
				Empty: "No services yet.",
				Fields: []adminform.Field{
					text("icon", "Icon"), text("title", "Title"), textarea("description", "Description"),
				},
			},
			Path: []string{"healthGateways", "services"},
		},
		{
			Group: adminform.RowGroup{
				Name:   "process-step",
				Title:  "Process step",
				Empty:  "No steps yet.",
				Fields: []adminform.Field{text("title", "Title"), textarea("description", "Description")},
			},
			Path: []string{"process", "steps"},
		},
		{
			Group: adminform.RowGroup{
				Name:  "map-location",
				Title: "Map location",
				Empty: "No locations yet.",
				Fields: []adminform.Field{
					text("name", "Name"), text("icon", "Icon"),
					textarea("description", "Description"),
					number("lat", "Latitude"), number("lng", "Longitude"),
					text("stat", "Stat"), text("statLabel", "Stat label"),
				},
			},
			Path: []string{"map", "locations"},
		},
	},
}

var editors = map[string]Editor{
	content.PageHome:    homeEditor,
	content.PageKidney:  kidneyEditor,
	content.PageTourism: tourismEditor,
}

// EditorFor returns the form definition for a page name.
func EditorFor(page string) (Editor, bool) {
	editor, ok := editors[page]
	return editor, ok
}
