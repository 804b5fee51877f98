package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullYAML = `
server:
  port: 9090
  cors_origin: "https://garage.example.com"

database:
  host: 10.0.0.5
  port: 3307
  name: pitstop_prod
  user: garage
  password: hunter2

notify:
  platform: slack
  token: xoxb-test
  channel: C123456
`

const minimalYAML = `
database:
  name: pitstop_dev
`

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "https://garage.example.com" {
		t.Errorf("Server.CORSOrigin = %q, want garage origin", cfg.Server.CORSOrigin)
	}
	if cfg.Database.Host != "10.0.0.5" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "10.0.0.5")
	}
	if cfg.Database.Port != 3307 {
		t.Errorf("Database.Port = %d, want 3307", cfg.Database.Port)
	}
	if cfg.Database.Name != "pitstop_prod" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "pitstop_prod")
	}
	if cfg.Database.User != "garage" {
		t.Errorf("Database.User = %q, want %q", cfg.Database.User, "garage")
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("Database.Password = %q, want %q", cfg.Database.Password, "hunter2")
	}
	if cfg.Notify.Platform != "slack" {
		t.Errorf("Notify.Platform = %q, want %q", cfg.Notify.Platform, "slack")
	}
	if cfg.Notify.Channel != "C123456" {
		t.Errorf("Notify.Channel = %q, want %q", cfg.Notify.Channel, "C123456")
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.CORSOrigin != "*" {
		t.Errorf("default Server.CORSOrigin = %q, want %q", cfg.Server.CORSOrigin, "*")
	}
	if cfg.Database.Host != "127.0.0.1" {
		t.Errorf("default Database.Host = %q, want %q", cfg.Database.Host, "127.0.0.1")
	}
	if cfg.Database.Port != 3306 {
		t.Errorf("default Database.Port = %d, want 3306", cfg.Database.Port)
	}
	if cfg.Database.User != "root" {
		t.Errorf("default Database.User = %q, want %q", cfg.Database.User, "root")
	}
	if cfg.Database.Name != "pitstop_dev" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "pitstop_dev")
	}
	if cfg.Notify.Platform != "" {
		t.Errorf("default Notify.Platform = %q, want empty", cfg.Notify.Platform)
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("PITSTOP_DB_PASSWORD", "from-env")
	t.Setenv("PITSTOP_NOTIFY_TOKEN", "xoxb-env")

	cfg, err := Parse([]byte(fullYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Password != "from-env" {
		t.Errorf("Database.Password = %q, want env override", cfg.Database.Password)
	}
	if cfg.Notify.Token != "xoxb-env" {
		t.Errorf("Notify.Token = %q, want env override", cfg.Notify.Token)
	}
}

func TestParse_InvalidPlatform(t *testing.T) {
	_, err := Parse([]byte("notify:\n  platform: telegram\n  token: t\n  channel: c\n"))
	if err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if !strings.Contains(err.Error(), "notify.platform") {
		t.Errorf("error = %q, want to mention notify.platform", err.Error())
	}
}

func TestParse_NotifyMissingToken(t *testing.T) {
	_, err := Parse([]byte("notify:\n  platform: discord\n  channel: c\n"))
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "notify.token is required") {
		t.Errorf("error = %q, want to mention missing token", err.Error())
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("server: [not a map"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("error = %q, want config: parse prefix", err.Error())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pitstop.yaml")
	if err := os.WriteFile(path, []byte(fullYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("/nonexistent/pitstop.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "config: read") {
		t.Errorf("error = %q, want config: read prefix", err.Error())
	}
}
