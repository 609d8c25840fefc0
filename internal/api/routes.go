package api

import (
	"net/http"

	"github.com/robinspt/food-inventory-system/internal/fooditems"
	"github.com/robinspt/food-inventory-system/internal/users"
	"github.com/robinspt/food-inventory-system/pkg/openapi"
	"github.com/robinspt/food-inventory-system/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, spec *openapi.Spec, basePath string, runtime *Runtime, domain *Domain) {
	usersHandler := users.NewHandler(domain.Users, runtime.Logger)
	foodItemsHandler := fooditems.NewHandler(domain.FoodItems, runtime.Logger, runtime.Pagination)

	routes.Register(
		mux,
		basePath,
		spec,
		usersHandler.Routes(),
		foodItemsHandler.Routes(),
	)
}
