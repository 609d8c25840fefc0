// Package api assembles the JSON API module: domain systems, their routes,
// the generated OpenAPI document and the module middleware.
package api

import (
	"net/http"

	"github.com/robinspt/food-inventory-system/internal/config"
	"github.com/robinspt/food-inventory-system/internal/infrastructure"
	"github.com/robinspt/food-inventory-system/pkg/middleware"
	"github.com/robinspt/food-inventory-system/pkg/module"
	"github.com/robinspt/food-inventory-system/pkg/openapi"
	"github.com/robinspt/food-inventory-system/web/docs"
)

// Module is the mounted API together with the domain systems it serves.
type Module struct {
	*module.Module
	Domain *Domain
}

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, cfg.API.BasePath, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	docsHandler, err := docs.NewHandler(cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /docs", docsHandler.ServeHTTP)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBody(cfg.API.MaxBodyBytes()))
	m.Use(middleware.TrimSlash())

	return &Module{Module: m, Domain: domain}, nil
}
