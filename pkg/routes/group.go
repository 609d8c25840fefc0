// Package routes declares HTTP route groups and registers them on a
// ServeMux while contributing their operations to an OpenAPI document.
package routes

import (
	"net/http"

	"github.com/robinspt/food-inventory-system/pkg/openapi"
)

// Group is a set of routes under a common prefix. Child groups nest
// beneath the parent prefix and inherit its tags when they declare none.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Route is a single method and pattern bound to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// AddToSpec adds the group's documented operations and schemas to spec.
// Paths are recorded under basePath, the prefix the module is mounted at.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, nil, spec)
}

func (g Group) addToSpec(parentPrefix string, parentTags []string, spec *openapi.Spec) {
	prefix := parentPrefix + g.Prefix
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}
		spec.AddOperation(prefix+route.Pattern, route.Method, &op)
	}

	for _, child := range g.Children {
		child.addToSpec(prefix, tags, spec)
	}
}

// Register mounts each group's handlers on mux and documents them in spec.
// Handlers are registered relative to the module root; basePath is only
// used for the documented paths.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		registerGroup(mux, "", g)
		g.AddToSpec(basePath, spec)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, g Group) {
	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		registerGroup(mux, prefix, child)
	}
}
