// Command expire runs a single expiration sweep and exits. It suits
// deployments that schedule sweeps externally and disable the in-process
// sweeper with expiration.enabled = false.
package main

import (
	"log"

	"github.com/robinspt/food-inventory-system/internal/config"
	"github.com/robinspt/food-inventory-system/internal/expiration"
	"github.com/robinspt/food-inventory-system/internal/fooditems"
	"github.com/robinspt/food-inventory-system/internal/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal("expiration sweep failed:", err)
	}
}

func run(cfg *config.Config) error {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}

	if err := infra.Start(); err != nil {
		return err
	}
	defer func() {
		if err := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
			infra.Logger.Error("shutdown failed", "error", err)
		}
	}()

	items := fooditems.New(
		infra.Database.Connection(),
		infra.Logger,
		cfg.API.Pagination,
		cfg.Expiration.WarningDays,
	)

	sweeper, err := expiration.New(items, cfg.Expiration.IntervalDuration(), infra.Logger)
	if err != nil {
		return err
	}

	_, err = sweeper.RunOnce(infra.Lifecycle.Context())
	return err
}
