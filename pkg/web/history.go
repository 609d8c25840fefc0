package web

import (
	"fmt"
	"net/url"
	"strings"
)

// ViewParam is the query parameter that carries the fragment path to the
// server in hash mode. The entry document script copies location.hash
// into it so the server can render the addressed view.
const ViewParam = "view"

// HistoryMode selects how view paths appear in browser URLs.
type HistoryMode string

const (
	// HistoryWeb serves every view at its own clean path.
	HistoryWeb HistoryMode = "web"
	// HistoryHash serves a single entry document and encodes the view
	// path in the URL fragment.
	HistoryHash HistoryMode = "hash"
)

// History maps between route table paths and the URLs a browser uses.
type History struct {
	mode HistoryMode
	base string
}

// NewWebHistory returns a path-based history rooted at base.
func NewWebHistory(base string) History {
	return History{mode: HistoryWeb, base: normalizeBase(base)}
}

// NewHashHistory returns a fragment-based history rooted at base.
func NewHashHistory(base string) History {
	return History{mode: HistoryHash, base: normalizeBase(base)}
}

// ParseHistory builds a History from a configured mode name.
func ParseHistory(mode, base string) (History, error) {
	switch HistoryMode(mode) {
	case HistoryWeb, "":
		return NewWebHistory(base), nil
	case HistoryHash:
		return NewHashHistory(base), nil
	default:
		return History{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// Mode returns the history strategy.
func (h History) Mode() HistoryMode { return h.mode }

// Base returns the normalized base path: "/" or "/prefix" without a
// trailing slash.
func (h History) Base() string {
	if h.base == "" {
		return "/"
	}
	return h.base
}

// Href returns the browser URL for a concrete view path.
func (h History) Href(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	base := h.Base()
	switch h.mode {
	case HistoryHash:
		if base == "/" {
			return "/#" + path
		}
		return base + "#" + path
	default:
		if base == "/" {
			return path
		}
		if path == "/" {
			return base
		}
		return base + path
	}
}

// Location maps an incoming request URL, relative to the mount point, to
// the view path it addresses. In hash mode only the entry document is
// served and the view path comes from the ViewParam query value.
func (h History) Location(u *url.URL) (string, bool) {
	requestPath := u.Path
	if requestPath == "" {
		requestPath = "/"
	}
	if h.mode != HistoryHash {
		return requestPath, true
	}
	if requestPath != "/" {
		return "", false
	}

	view := u.Query().Get(ViewParam)
	if view == "" {
		return "/", true
	}
	if !strings.HasPrefix(view, "/") {
		view = "/" + view
	}
	return view, true
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimSuffix(base, "/")
}
