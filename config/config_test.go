package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/invoicing")
	for _, k := range []string{"DB_MAX_CONNS", "AUTO_MIGRATE", "PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBMaxConns != 10 || !cfg.AutoMigrate {
		t.Errorf("defaults = %+v", cfg)
	}
	lc := cfg.GetLoggerConfig()
	if lc.Level != "info" || lc.Format != "console" || lc.Output != "stdout" {
		t.Errorf("logger config = %+v", lc)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}, "DATABASE_URL is required"},
		{"bad max conns", map[string]string{"DB_MAX_CONNS": "many"}, "DB_MAX_CONNS"},
		{"zero max conns", map[string]string{"DB_MAX_CONNS": "0"}, "at least 1"},
		{"bad auto migrate", map[string]string{"AUTO_MIGRATE": "sometimes"}, "AUTO_MIGRATE"},
		{"bad port", map[string]string{"PORT": ":80"}, "PORT must be numeric"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/invoicing")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
