package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robinspt/food-inventory-system/pkg/openapi"
	"github.com/robinspt/food-inventory-system/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func TestGroupAddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/food_items",
		Tags:   []string{"Food Items"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "POST", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Create"}},
			{Method: "PUT", Pattern: "/{id}", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Update"}},
			{Method: "DELETE", Pattern: "/{id}", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Delete", Tags: []string{"Custom"}}},
			{Method: "GET", Pattern: "/hidden", Handler: noop},
		},
	}

	group.AddToSpec("/api", spec)

	list := spec.Paths["/api/food_items"]
	if list == nil {
		t.Fatal("path /api/food_items not added")
	}
	if list.Get == nil || list.Get.Summary != "List" {
		t.Error("GET operation incorrect")
	}
	if list.Post == nil || list.Post.Summary != "Create" {
		t.Error("POST operation incorrect")
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Food Items" {
		t.Errorf("Tags = %v, want [Food Items]", list.Get.Tags)
	}

	item := spec.Paths["/api/food_items/{id}"]
	if item == nil || item.Put == nil || item.Delete == nil {
		t.Fatal("item operations not added")
	}
	if item.Delete.Tags[0] != "Custom" {
		t.Errorf("explicit tags overwritten: %v", item.Delete.Tags)
	}

	if spec.Paths["/api/food_items/hidden"] != nil {
		t.Error("route without OpenAPI operation was documented")
	}
}

func TestGroupAddToSpecChildrenAndSchemas(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/users",
		Tags:   []string{"Users"},
		Schemas: map[string]*openapi.Schema{
			"User": {Type: "object", Properties: map[string]*openapi.Schema{"id": {Type: "integer"}}},
		},
		Children: []routes.Group{
			{
				Prefix: "/sessions",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List sessions"}},
				},
			},
		},
	}

	group.AddToSpec("", spec)

	child := spec.Paths["/users/sessions"]
	if child == nil || child.Get == nil {
		t.Fatal("child path not added")
	}
	if child.Get.Tags[0] != "Users" {
		t.Errorf("child tags = %v, want inherited [Users]", child.Get.Tags)
	}
	if spec.Components.Schemas["User"] == nil {
		t.Error("schema not added to spec")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	items := routes.Group{
		Prefix: "/food_items",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("list"))
			}, OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("item " + r.PathValue("id")))
			}, OpenAPI: &openapi.Operation{Summary: "Find"}},
		},
	}

	notifications := routes.Group{
		Prefix: "/notifications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("notifications"))
			}, OpenAPI: &openapi.Operation{Summary: "Notifications"}},
		},
	}

	routes.Register(mux, "/api", spec, items, notifications)

	tests := []struct {
		path string
		want string
	}{
		{"/food_items", "list"},
		{"/food_items/7", "item 7"},
		{"/notifications", "notifications"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	for _, path := range []string{"/api/food_items", "/api/food_items/{id}", "/api/notifications"} {
		if spec.Paths[path] == nil {
			t.Errorf("spec path %s not added", path)
		}
	}
}
