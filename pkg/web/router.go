package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/rohanthewiz/rweb/core/rtr"
)

// Match is the result of resolving a concrete path against the route table.
type Match struct {
	ViewDef
	Params map[string]string
}

// Router serves a route table of views. View paths are matched with a
// radix tree; additional handlers such as static assets are registered on
// an inner ServeMux. Requests that match neither go to the fallback.
type Router struct {
	history  History
	views    []ViewDef
	tree     rtr.Tree[*ViewDef]
	names    map[string]*ViewDef
	mux      *http.ServeMux
	fallback http.HandlerFunc
	logger   *slog.Logger
	data     any
}

// NewRouter builds a Router for views under the given history strategy.
// The table is validated: every entry needs a path, a name and a view,
// and neither paths nor names may repeat.
func NewRouter(history History, views []ViewDef) (*Router, error) {
	r := &Router{
		history: history,
		views:   slices.Clone(views),
		names:   make(map[string]*ViewDef, len(views)),
		mux:     http.NewServeMux(),
		logger:  slog.Default(),
	}

	shapes := make(map[string]string, len(views))
	for i := range r.views {
		def := &r.views[i]

		if err := validateDef(def); err != nil {
			return nil, err
		}

		if _, exists := r.names[def.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, def.Name)
		}

		shape := pathShape(def.Path)
		if other, exists := shapes[shape]; exists {
			return nil, fmt.Errorf("%w: %s (%s conflicts with %s)", ErrDuplicatePath, def.Path, def.Name, other)
		}

		shapes[shape] = def.Name
		r.names[def.Name] = def
		r.tree.Add(def.Path, def)
	}

	return r, nil
}

// History returns the history strategy the router was built with.
func (r *Router) History() History { return r.history }

// Views returns a copy of the route table in registration order.
func (r *Router) Views() []ViewDef {
	return slices.Clone(r.views)
}

// SetLogger sets the logger used to report render failures.
func (r *Router) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// SetData sets the value exposed to every view as ViewData.Data.
func (r *Router) SetData(data any) {
	r.data = data
}

// Resolve matches a concrete path to its view. A parameter segment must
// be non-empty for the view to match.
func (r *Router) Resolve(path string) (Match, bool) {
	def, params := r.tree.Lookup(path)
	if def == nil {
		return Match{}, false
	}

	m := Match{ViewDef: *def}
	if len(params) > 0 {
		m.Params = make(map[string]string, len(params))
		for _, p := range params {
			if p.Value == "" {
				return Match{}, false
			}
			m.Params[p.Key] = p.Value
		}
	}
	return m, true
}

// URL returns the browser URL of the named view with params substituted.
func (r *Router) URL(name string, params map[string]string) (string, error) {
	def, ok := r.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownView, name)
	}

	segments := strings.Split(def.Path, "/")
	for i, s := range segments {
		key, isParam := strings.CutPrefix(s, ":")
		if !isParam {
			continue
		}
		value := params[key]
		if value == "" {
			return "", fmt.Errorf("%w: %s requires %q", ErrMissingParam, name, key)
		}
		segments[i] = url.PathEscape(value)
	}

	return r.history.Href(strings.Join(segments, "/")), nil
}

// Handle registers a handler on the inner mux.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function on the inner mux.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// SetFallback sets the handler for requests that match no view or pattern.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.fallback = handler
}

// ErrorHandler renders def as an error page with the given status.
func (r *Router) ErrorHandler(def ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		data := r.viewData(def, nil)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := def.View.Render(w, data); err != nil {
			r.logger.Error("render error view failed", "view", def.View.File(), "error", err)
		}
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		if location, ok := r.history.Location(req.URL); ok {
			if m, ok := r.Resolve(location); ok {
				r.render(w, m)
				return
			}
		}
	}

	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.fallback(w, req)
			return
		}
	}

	r.mux.ServeHTTP(w, req)
}

func (r *Router) render(w http.ResponseWriter, m Match) {
	if _, err := m.View.Resolve(); err != nil {
		r.logger.Error("view resolution failed", "view", m.Name, "file", m.View.File(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := m.View.Render(w, r.viewData(m.ViewDef, m.Params)); err != nil {
		r.logger.Error("view render failed", "view", m.Name, "error", err)
	}
}

func (r *Router) viewData(def ViewDef, params map[string]string) ViewData {
	return ViewData{
		Title:    def.Title,
		Bundle:   def.Bundle,
		BasePath: r.history.Base(),
		History:  string(r.history.Mode()),
		Route:    def.Name,
		Params:   params,
		Data:     r.data,
		router:   r,
	}
}

func validateDef(def *ViewDef) error {
	switch {
	case def.Name == "":
		return fmt.Errorf("%w: view at %q has no name", ErrInvalidView, def.Path)
	case !strings.HasPrefix(def.Path, "/"):
		return fmt.Errorf("%w: %s path %q must begin with /", ErrInvalidView, def.Name, def.Path)
	case def.View == nil:
		return fmt.Errorf("%w: %s has no view", ErrInvalidView, def.Name)
	}

	for _, s := range strings.Split(def.Path, "/") {
		if s == ":" {
			return fmt.Errorf("%w: %s has an unnamed parameter", ErrInvalidView, def.Name)
		}
		if strings.Contains(s, "*") {
			return fmt.Errorf("%w: %s wildcard segments are not supported", ErrInvalidView, def.Name)
		}
	}
	return nil
}

// pathShape erases parameter names so /a/:id and /a/:key compare equal.
func pathShape(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = ":"
		}
	}
	return strings.Join(segments, "/")
}
