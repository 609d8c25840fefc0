package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/robinspt/food-inventory-system/internal/config"
	"github.com/robinspt/food-inventory-system/pkg/web"
)

const baseConfig = `
shutdown_timeout = "20s"

[database]
name = "inventory"
user = "app"

[api]
max_body_size = "512KB"

[app]
history = "hash"
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_BaseConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 20*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 20s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q", cfg.API.BasePath)
	}
	if cfg.API.MaxBodyBytes() != 512*1000 {
		t.Errorf("MaxBodyBytes() = %d, want %d", cfg.API.MaxBodyBytes(), 512*1000)
	}
	if cfg.API.Pagination.DefaultPageSize == 0 {
		t.Error("pagination defaults not applied")
	}
	if cfg.Expiration.WarningDays != 7 || cfg.Expiration.IntervalDuration() != time.Hour {
		t.Errorf("expiration = %+v", cfg.Expiration)
	}
	if !cfg.Expiration.SweepEnabled() {
		t.Error("sweeper should default to enabled")
	}

	h, err := cfg.App.NewHistory()
	if err != nil {
		t.Fatalf("NewHistory() error = %v", err)
	}
	if h.Mode() != web.HistoryHash {
		t.Errorf("history mode = %s, want hash", h.Mode())
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.test.toml", `
shutdown_timeout = "60s"

[server]
port = 9090

[expiration]
enabled = false
warning_days = 3
`)
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != time.Minute {
		t.Errorf("ShutdownTimeout = %v, want 60s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Name != "inventory" {
		t.Errorf("Database.Name = %q, base value lost", cfg.Database.Name)
	}
	if cfg.Expiration.SweepEnabled() {
		t.Error("sweeper should be disabled by overlay")
	}
	if cfg.Expiration.WarningDays != 3 {
		t.Errorf("WarningDays = %d, want 3", cfg.Expiration.WarningDays)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServerPort, "7070")
	t.Setenv("DATABASE_NAME", "from_env")
	t.Setenv(config.EnvAppHistory, "web")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Name != "from_env" {
		t.Errorf("Database.Name = %q, want from_env", cfg.Database.Name)
	}
	if cfg.App.History != "web" {
		t.Errorf("App.History = %q, want web", cfg.App.History)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Error("expected error for missing config.toml")
	}
}

func TestFinalize_Invalid(t *testing.T) {
	valid := func() *config.Config {
		cfg := &config.Config{}
		cfg.Database.Name = "inventory"
		cfg.Database.User = "app"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"shutdown timeout", func(c *config.Config) { c.ShutdownTimeout = "later" }},
		{"port", func(c *config.Config) { c.Server.Port = 70000 }},
		{"api base path", func(c *config.Config) { c.API.BasePath = "/api/v1" }},
		{"max body size", func(c *config.Config) { c.API.MaxBodySize = "lots" }},
		{"history", func(c *config.Config) { c.App.History = "memory" }},
		{"interval", func(c *config.Config) { c.Expiration.Interval = "1s" }},
		{"warning days", func(c *config.Config) { c.Expiration.WarningDays = -1 }},
		{"database", func(c *config.Config) { c.Database.User = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Finalize(); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("valid", func(t *testing.T) {
		if err := valid().Finalize(); err != nil {
			t.Errorf("Finalize() error = %v", err)
		}
	})
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090, WriteTimeout: "60s"})

	if base.Host != "localhost" || base.Port != 9090 {
		t.Errorf("got host=%s port=%d", base.Host, base.Port)
	}
	if base.ReadTimeout != "30s" || base.WriteTimeout != "60s" {
		t.Errorf("got read=%s write=%s", base.ReadTimeout, base.WriteTimeout)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"localhost", 3000, "localhost:3000"},
		{"::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			cfg := &config.ServerConfig{Host: tt.host, Port: tt.port}
			if got := cfg.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}
