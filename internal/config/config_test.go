package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_NAME", "SESSION_SECRET", "ADMIN_EMAIL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 300*time.Second {
		t.Errorf("WriteTimeout = %v, want 300s", cfg.Server.WriteTimeout)
	}
	if cfg.Database.Configured() {
		t.Error("database should be unconfigured by default")
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.Auth.SessionTTL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "portfolio")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if !cfg.Database.Configured() {
		t.Error("database should be configured")
	}
	if cfg.Auth.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("MaxOpenConns = %d", cfg.Database.MaxOpenConns)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "empty config is valid degraded mode",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "host without name",
			mutate: func(c *Config) {
				c.Database.Host = "localhost"
			},
			wantErr: true,
		},
		{
			name: "name without host",
			mutate: func(c *Config) {
				c.Database.Name = "portfolio"
			},
			wantErr: true,
		},
		{
			name: "database without session secret",
			mutate: func(c *Config) {
				c.Database.Host = "localhost"
				c.Database.Name = "portfolio"
			},
			wantErr: true,
		},
		{
			name: "full database config",
			mutate: func(c *Config) {
				c.Database.Host = "localhost"
				c.Database.Name = "portfolio"
				c.Auth.SessionSecret = "secret"
			},
			wantErr: false,
		},
		{
			name: "admin email without password",
			mutate: func(c *Config) {
				c.Auth.AdminEmail = "anna@example.com"
			},
			wantErr: true,
		},
		{
			name: "admin email with password",
			mutate: func(c *Config) {
				c.Auth.AdminEmail = "anna@example.com"
				c.Auth.AdminPassword = "segreto"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		Name:     "portfolio",
		SSLMode:  "disable",
	}
	want := "host=localhost port=5432 user=postgres password=pw dbname=portfolio sslmode=disable"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN = %q, want %q", got, want)
	}
}
