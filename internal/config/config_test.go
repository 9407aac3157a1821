package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/splitease/splitease/internal/settlement"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SHUTDOWN_TIMEOUT", "STORE_BACKEND", "DB_PATH", "SETTLEMENT_STRATEGY", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Errorf("StoreBackend = %q, want memory", cfg.StoreBackend)
	}
	if cfg.DBPath != "./data/bills.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Strategy != settlement.Pairwise {
		t.Errorf("Strategy = %q, want pairwise", cfg.Strategy)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.ShutdownTimeout)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("DB_PATH", "/tmp/bills.db")
	t.Setenv("SETTLEMENT_STRATEGY", "minimize")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Errorf("StoreBackend = %q, want sqlite", cfg.StoreBackend)
	}
	if cfg.Strategy != settlement.Minimize {
		t.Errorf("Strategy = %q, want minimize", cfg.Strategy)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should be valid: %v", err)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv writes to the process environment; t.Setenv restores it afterwards
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("LOG_FORMAT", "json")

	content := "PORT=7070\nLOG_FORMAT=text\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg := Load()

	if cfg.Port != 7070 {
		t.Errorf("Port = %d, want 7070 from .env", cfg.Port)
	}
	// Variables already set win over .env
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json from environment", cfg.LogFormat)
	}
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("PORT", 3000)
	v.Set("SHUTDOWN_TIMEOUT", "30s")
	v.Set("STORE_BACKEND", "SQLITE")
	v.Set("DB_PATH", "bills.db")
	v.Set("SETTLEMENT_STRATEGY", "Minimize")
	v.Set("LOG_LEVEL", "warn")
	v.Set("LOG_FORMAT", "JSON")

	got := FromViper(v)
	want := &Config{
		Port:            3000,
		ShutdownTimeout: 30 * time.Second,
		StoreBackend:    BackendSQLite,
		DBPath:          "bills.db",
		Strategy:        settlement.Minimize,
		LogLevel:        "warn",
		LogFormat:       "json",
	}
	if *got != *want {
		t.Errorf("FromViper() = %+v, want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
			StoreBackend:    BackendMemory,
			Strategy:        settlement.Pairwise,
			LogLevel:        "info",
			LogFormat:       "text",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port too low", func(c *Config) { c.Port = 0 }, "invalid port"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"unknown backend", func(c *Config) { c.StoreBackend = "postgres" }, "invalid store backend"},
		{"sqlite without path", func(c *Config) { c.StoreBackend = BackendSQLite; c.DBPath = "" }, "DB_PATH"},
		{"unknown strategy", func(c *Config) { c.Strategy = "magic" }, "unknown settlement strategy"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "invalid log format"},
		{"short shutdown", func(c *Config) { c.ShutdownTimeout = time.Millisecond }, "invalid shutdown timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_CombinesErrors(t *testing.T) {
	cfg := &Config{Port: -1, StoreBackend: "x", Strategy: "y", LogLevel: "z", LogFormat: "w"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 6 {
		t.Errorf("expected 6 combined problems, got %d:\n%v", got, err)
	}
}
