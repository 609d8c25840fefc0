package main

import (
	"context"
	"net/http"
	"time"

	"github.com/robinspt/food-inventory-system/internal/api"
	"github.com/robinspt/food-inventory-system/internal/config"
	"github.com/robinspt/food-inventory-system/internal/infrastructure"
	"github.com/robinspt/food-inventory-system/pkg/middleware"
	"github.com/robinspt/food-inventory-system/pkg/module"
	"github.com/robinspt/food-inventory-system/web/app"
)

const readyTimeout = 2 * time.Second

type Modules struct {
	API *api.Module
	App http.Handler
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	history, err := cfg.App.NewHistory()
	if err != nil {
		return nil, err
	}

	appLogger := infra.Logger.With("module", "app")
	appRouter, err := app.NewRouter(history, app.Settings{APIPath: cfg.API.BasePath}, appLogger)
	if err != nil {
		return nil, err
	}

	var appHandler http.Handler = appRouter
	if base := history.Base(); base != "/" {
		appHandler = http.StripPrefix(base, appRouter)
	}

	appMiddleware := middleware.New()
	appMiddleware.Use(middleware.RequestID())
	appMiddleware.Use(middleware.Logger(appLogger))

	return &Modules{
		API: apiModule,
		App: appMiddleware.Apply(appHandler),
	}, nil
}

// Mount registers the API as a prefix module and the app as the catch-all.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API.Module)
	router.HandleNative("/", m.App.ServeHTTP)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := infra.Database.Check(ctx); err != nil {
			infra.Logger.Warn("readiness check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
