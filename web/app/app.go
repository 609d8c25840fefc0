// Package app provides the browser-facing web application: the route table
// of views and the embedded templates and assets they render with.
package app

import (
	"embed"
	"log/slog"
	"net/http"
	"slices"

	"github.com/robinspt/food-inventory-system/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

var publicFiles = []string{
	"favicon.svg",
	"site.webmanifest",
}

var templates = must(web.NewTemplateSet(
	layoutFS,
	viewFS,
	"server/layouts/*.html",
	"server/views",
	"app.html",
))

// foodItemManage backs both the create and edit routes. It renders in edit
// mode when the id parameter is present.
var foodItemManage = templates.View("food-item-manage.html")

var views = []web.ViewDef{
	{Path: "/", Name: "Home", View: templates.View("home.html"), Title: "Home", Bundle: "app"},
	{Path: "/register", Name: "Register", View: templates.View("register.html"), Title: "Register", Bundle: "app"},
	{Path: "/login", Name: "Login", View: templates.View("login.html"), Title: "Login", Bundle: "app"},
	{Path: "/inventory", Name: "InventoryList", View: templates.View("inventory-list.html"), Title: "Inventory", Bundle: "app"},
	{Path: "/add-food-item", Name: "AddFoodItem", View: foodItemManage, Title: "Add Food Item", Bundle: "app"},
	{Path: "/manage-food-item/:id", Name: "EditFoodItem", View: foodItemManage, Title: "Edit Food Item", Bundle: "app"},
}

var notFound = web.ViewDef{
	Name:   "NotFound",
	View:   templates.View("404.html"),
	Title:  "Not Found",
	Bundle: "app",
}

// Settings is exposed to every view as .Data.
type Settings struct {
	APIPath string
}

// Views returns a copy of the application's route table.
func Views() []web.ViewDef {
	return slices.Clone(views)
}

// NewRouter builds the application router for the given history strategy.
func NewRouter(history web.History, settings Settings, logger *slog.Logger) (*web.Router, error) {
	r, err := web.NewRouter(history, views)
	if err != nil {
		return nil, err
	}

	r.SetLogger(logger)
	r.SetData(settings)
	r.SetFallback(r.ErrorHandler(notFound, http.StatusNotFound))

	r.Handle("GET /dist/", http.FileServer(http.FS(distFS)))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r, nil
}

func must(ts *web.TemplateSet, err error) *web.TemplateSet {
	if err != nil {
		panic(err)
	}
	return ts
}
