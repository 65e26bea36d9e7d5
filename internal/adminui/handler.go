package adminui

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clinic/api/internal/adminform"
	"clinic/api/internal/auth"
	"clinic/api/internal/store"

	"github.com/rs/zerolog"
)

// SessionCookie carries the signed admin token. It is a session cookie on
// purpose: no Max-Age, so closing the browser ends the session.
const SessionCookie = "clinic_admin"

// PageService is the slice of the application service the console needs.
type PageService interface {
	PageDocument(ctx context.Context, page string) (json.RawMessage, error)
	SavePage(ctx context.Context, page string, body map[string]any) (json.RawMessage, error)
	Services(ctx context.Context) ([]store.Service, error)
	Service(ctx context.Context, id string) (store.Service, error)
	UpdateService(ctx context.Context, id string, patch json.RawMessage) (store.Service, error)
}

type Config struct {
	AdminUser    string
	PasswordHash string
	Secret       string
	SessionTTL   time.Duration
}

type Handler struct {
	service PageService
	cfg     Config
	log     zerolog.Logger
}

func New(service PageService, cfg Config, log zerolog.Logger) *Handler {
	return &Handler{service: service, cfg: cfg, log: log}
}

func (h *Handler) Handler() http.Handler {
	return http.HandlerFunc(h.dispatch)
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path)
	if len(parts) == 0 || parts[0] != "admin" {
		http.NotFound(w, r)
		return
	}
	rest := parts[1:]

	switch {
	case len(rest) == 1 && rest[0] == "login":
		h.handleLogin(w, r)
	case len(rest) == 1 && rest[0] == "logout":
		h.handleLogout(w, r)
	case len(rest) == 0:
		h.requireAdmin(w, r, h.handleDashboard)
	case rest[0] == "services" && len(rest) == 1:
		h.requireAdmin(w, r, h.handleServiceList)
	case rest[0] == "services" && len(rest) == 2:
		id := rest[1]
		h.requireAdmin(w, r, func(w http.ResponseWriter, r *http.Request) {
			h.handleServiceEditor(w, r, id)
		})
	case len(rest) == 1:
		if _, ok := EditorFor(rest[0]); !ok {
			http.NotFound(w, r)
			return
		}
		page := rest[0]
		h.requireAdmin(w, r, func(w http.ResponseWriter, r *http.Request) {
			h.handleEditor(w, r, page)
		})
	default:
		http.NotFound(w, r)
	}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// requireAdmin verifies the session cookie before running next. Anything
// wrong with the cookie sends the browser back to the login form.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if _, err := auth.ParseToken([]byte(h.cfg.Secret), cookie.Value); err != nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	next(w, r)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderLogin(w, "")
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			h.renderLogin(w, "Invalid form submission.")
			return
		}
		username := r.PostForm.Get("username")
		password := r.PostForm.Get("password")
		if err := auth.CheckCredentials(h.cfg.AdminUser, h.cfg.PasswordHash, username, password); err != nil {
			h.log.Warn().Str("username", username).Msg("admin login rejected")
			h.renderLogin(w, "Invalid username or password.")
			return
		}
		token, err := auth.IssueToken([]byte(h.cfg.Secret), username, h.cfg.SessionTTL)
		if err != nil {
			h.log.Error().Err(err).Msg("issue session token")
			h.renderLogin(w, "Something went wrong, try again.")
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	entries := make([]dashboardEntry, 0, len(editors))
	for _, editor := range []Editor{homeEditor, tourismEditor, kidneyEditor} {
		entries = append(entries, dashboardEntry{Page: editor.Page, Title: editor.Title})
	}
	h.render(w, dashboardTmpl, dashboardView{Entries: entries})
}

func (h *Handler) handleEditor(w http.ResponseWriter, r *http.Request, page string) {
	editor, _ := EditorFor(page)

	switch r.Method {
	case http.MethodGet:
		raw, err := h.service.PageDocument(r.Context(), page)
		if err != nil {
			h.log.Error().Err(err).Str("page", page).Msg("load page for editing")
			http.Error(w, "failed to load page", http.StatusInternalServerError)
			return
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			http.Error(w, "stored document is corrupt", http.StatusInternalServerError)
			return
		}
		h.renderEditor(w, editor, editor.FormValues(doc), "")
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		action := adminform.ParseAction(r.PostForm.Get("action"))
		switch action.Kind {
		case adminform.ActionAdd, adminform.ActionRemove:
			binding, ok := editor.groupBinding(action.Group)
			if !ok {
				h.renderEditor(w, editor, r.PostForm, "Unknown section.")
				return
			}
			// Blank rows stay in play here: the remove index refers to the
			// rows as rendered, so dropping blanks first would shift targets.
			rows := adminform.CollectAllRows(r.PostForm, binding.Group)
			if action.Kind == adminform.ActionAdd {
				rows = adminform.AddRow(binding.Group, rows)
			} else {
				rows = adminform.RemoveRow(rows, action.Index)
			}
			adminform.SetRows(r.PostForm, binding.Group, rows)
			// Row edits re-render only; nothing is saved until Save.
			h.renderEditor(w, editor, r.PostForm, "")
		default:
			doc := editor.Document(r.PostForm)
			saved, err := h.service.SavePage(r.Context(), page, doc)
			if err != nil {
				h.log.Error().Err(err).Str("page", page).Msg("save page")
				h.renderEditor(w, editor, r.PostForm, "Save failed, changes not stored.")
				return
			}
			var savedDoc map[string]any
			if err := json.Unmarshal(saved, &savedDoc); err == nil {
				h.renderEditor(w, editor, editor.FormValues(savedDoc), "Saved.")
				return
			}
			h.renderEditor(w, editor, r.PostForm, "Saved.")
		}
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type scalarView struct {
	Label    string
	Name     string
	Value    string
	Textarea bool
}

type editorView struct {
	Title   string
	Page    string
	Flash   string
	Scalars []scalarView
	Groups  []template.HTML
}

type dashboardEntry struct {
	Page  string
	Title string
}

type dashboardView struct {
	Entries []dashboardEntry
}

type loginView struct {
	Error string
}

func (h *Handler) renderEditor(w http.ResponseWriter, editor Editor, values url.Values, flash string) {
	view := editorView{
		Title: editor.Title,
		Page:  editor.Page,
		Flash: flash,
	}
	for _, field := range editor.Scalars {
		view.Scalars = append(view.Scalars, scalarView{
			Label:    field.Label,
			Name:     field.InputName(),
			Value:    values.Get(field.InputName()),
			Textarea: field.Textarea,
		})
	}
	for _, binding := range editor.Groups {
		markup, err := adminform.Render(binding.Group, adminform.CollectAllRows(values, binding.Group))
		if err != nil {
			h.log.Error().Err(err).Str("group", binding.Group.Name).Msg("render row group")
			http.Error(w, "failed to render editor", http.StatusInternalServerError)
			return
		}
		view.Groups = append(view.Groups, markup)
	}
	h.render(w, editorTmpl, view)
}

func (h *Handler) renderLogin(w http.ResponseWriter, message string) {
	h.render(w, loginTmpl, loginView{Error: message})
}

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, view any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, view); err != nil {
		h.log.Error().Err(err).Msg("render admin template")
	}
}

var loginTmpl = template.Must(template.New("login").Parse(`<!doctype html>
<html><head><title>Admin login</title></head><body>
<h1>Clinic admin</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/admin/login">
<label>Username <input type="text" name="username" autocomplete="username"></label>
<label>Password <input type="password" name="password" autocomplete="current-password"></label>
<button type="submit">Sign in</button>
</form>
</body></html>
`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html><head><title>Admin</title></head><body>
<h1>Pages</h1>
<ul>
{{range .Entries}}<li><a href="/admin/{{.Page}}">{{.Title}}</a></li>
{{end}}<li><a href="/admin/services">Services</a></li>
</ul>
<form method="post" action="/admin/logout"><button type="submit">Sign out</button></form>
</body></html>
`))

var editorTmpl = template.Must(template.New("editor").Parse(`<!doctype html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.Title}}</h1>
{{if .Flash}}<p class="flash">{{.Flash}}</p>{{end}}
<form method="post" action="/admin/{{.Page}}">
{{range .Scalars}}<label>{{.Label}}
{{if .Textarea}}<textarea name="{{.Name}}">{{.Value}}</textarea>{{else}}<input type="text" name="{{.Name}}" value="{{.Value}}">{{end}}
</label>
{{end}}
{{range .Groups}}{{.}}
{{end}}<button type="submit" name="action" value="save">Save</button>
</form>
<p><a href="/admin">Back to pages</a></p>
</body></html>
`))
