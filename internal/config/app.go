package config

import (
	"fmt"
	"os"

	"github.com/robinspt/food-inventory-system/pkg/web"
)

const (
	EnvAppBasePath = "APP_BASE_PATH"
	EnvAppHistory  = "APP_HISTORY"
)

// AppConfig configures the browser-facing web module.
type AppConfig struct {
	BasePath string `toml:"base_path"`
	History  string `toml:"history"`
}

// NewHistory builds the history strategy described by the configuration.
func (c *AppConfig) NewHistory() (web.History, error) {
	return web.ParseHistory(c.History, c.BasePath)
}

func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.History != "" {
		c.History = overlay.History
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.History == "" {
		c.History = string(web.HistoryWeb)
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppHistory); v != "" {
		c.History = v
	}
}

func (c *AppConfig) validate() error {
	if _, err := c.NewHistory(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}
