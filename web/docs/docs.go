// Package docs serves the interactive API reference page. The page loads
// the Scalar UI and points it at the service's OpenAPI document.
package docs

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/robinspt/food-inventory-system/pkg/web"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Handler serves the rendered documentation page.
type Handler struct {
	page http.HandlerFunc
}

// NewHandler renders the page once for the given title and spec URL.
func NewHandler(title, specURL string) (*Handler, error) {
	var buf bytes.Buffer
	err := index.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	if err != nil {
		return nil, err
	}

	return &Handler{
		page: web.ServeEmbeddedFile(buf.Bytes(), "text/html; charset=utf-8"),
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.page(w, r)
}
