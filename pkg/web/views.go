// Package web serves server-rendered views from a declarative route table.
// Each view is bound to a path pattern and a unique name, and its template
// is resolved lazily on first activation rather than at startup.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"sync"
	"sync/atomic"
)

// ViewDef describes one entry of a route table.
// Path segments beginning with ':' capture a named parameter.
type ViewDef struct {
	Path   string
	Name   string
	View   *View
	Title  string
	Bundle string
}

// ViewData is the value passed to the layout when a view renders.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	History  string
	Route    string
	Params   map[string]string
	Data     any

	router *Router
}

// Param returns the named route parameter, or "" when absent.
func (d ViewData) Param(key string) string {
	return d.Params[key]
}

// Asset returns the URL of a static file served under the base path.
func (d ViewData) Asset(file string) string {
	base := d.BasePath
	if base == "" {
		base = "/"
	}
	return path.Join(base, file)
}

// Href builds the URL of a named view. Parameters are given as key/value pairs:
//
//	{{ .Href "EditFoodItem" "id" "42" }}
func (d ViewData) Href(name string, pairs ...string) (string, error) {
	if d.router == nil {
		return "", fmt.Errorf("href %s: no router bound to view data", name)
	}
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("href %s: odd number of parameter arguments", name)
	}

	params := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}
	return d.router.URL(name, params)
}

// View is a lazily resolved template unit. The first call to Resolve loads
// and parses the template; the result, success or failure, is cached.
type View struct {
	file    string
	layout  string
	loaded  atomic.Bool
	resolve func() (*template.Template, error)
}

// NewView wraps a loader in a View. The loader runs at most once.
func NewView(file, layout string, load func() (*template.Template, error)) *View {
	v := &View{file: file, layout: layout}
	v.resolve = sync.OnceValues(func() (*template.Template, error) {
		defer v.loaded.Store(true)
		return load()
	})
	return v
}

// File returns the template file backing the view.
func (v *View) File() string { return v.file }

// Loaded reports whether the view has been resolved.
func (v *View) Loaded() bool { return v.loaded.Load() }

// Resolve returns the parsed template, loading it on first use.
func (v *View) Resolve() (*template.Template, error) {
	return v.resolve()
}

// Render resolves the view and executes its layout with data.
func (v *View) Render(w http.ResponseWriter, data ViewData) error {
	t, err := v.Resolve()
	if err != nil {
		return fmt.Errorf("resolve view %s: %w", v.file, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, v.layout, data)
}

// TemplateSet holds the parsed layouts and produces lazily loaded views
// from a view directory. Layouts are parsed eagerly so a broken layout
// fails at startup; individual views are parsed on first activation.
type TemplateSet struct {
	layouts *template.Template
	viewFS  fs.FS
	layout  string

	mu    sync.Mutex
	views map[string]*View
}

// NewTemplateSet parses the layouts matched by layoutGlob and prepares
// viewSubdir of viewFS as the source of lazily loaded views. layout names
// the template every view executes.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, layout string) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	if layouts.Lookup(layout) == nil {
		return nil, fmt.Errorf("layout not found: %s", layout)
	}

	if _, err := fs.Stat(viewFS, viewSubdir); err != nil {
		return nil, fmt.Errorf("view directory %s: %w", viewSubdir, err)
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	return &TemplateSet{
		layouts: layouts,
		viewFS:  viewSub,
		layout:  layout,
		views:   make(map[string]*View),
	}, nil
}

// View returns the lazily loaded view for file. Repeated calls with the
// same file return the same *View.
func (ts *TemplateSet) View(file string) *View {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if v, ok := ts.views[file]; ok {
		return v
	}

	v := NewView(file, ts.layout, func() (*template.Template, error) {
		t, err := ts.layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", file, err)
		}
		if _, err := t.ParseFS(ts.viewFS, file); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", file, err)
		}
		return t, nil
	})
	ts.views[file] = v
	return v
}
