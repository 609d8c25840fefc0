package main

import (
	"fmt"
	"time"

	"github.com/robinspt/food-inventory-system/internal/config"
	"github.com/robinspt/food-inventory-system/internal/expiration"
	"github.com/robinspt/food-inventory-system/internal/infrastructure"
	"github.com/robinspt/food-inventory-system/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	sweeper *expiration.Sweeper
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	var sweeper *expiration.Sweeper
	if cfg.Expiration.SweepEnabled() {
		sweeper, err = expiration.New(
			modules.API.Domain.FoodItems,
			cfg.Expiration.IntervalDuration(),
			infra.Logger,
		)
		if err != nil {
			return nil, fmt.Errorf("expiration sweeper init failed: %w", err)
		}
	}

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"history", cfg.App.History,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		sweeper: sweeper,
		http:    server.New(&cfg.Server, router, infra.Logger, cfg.ShutdownTimeoutDuration()),
	}, nil
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if s.sweeper != nil {
		if err := s.sweeper.Start(s.infra.Lifecycle); err != nil {
			return err
		}
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems, waiting at most timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
