package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Redis struct {
		Addr string `koanf:"addr"`
		DB   int    `koanf:"db"`
	} `koanf:"redis"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewLoaderOptions(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}

	l = NewLoader(WithEnvPrefix("TEST_"), WithConfigFile("/etc/chatmesh/config.yaml"))
	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want TEST_", l.envPrefix)
	}
	if l.filePath != "/etc/chatmesh/config.yaml" {
		t.Errorf("filePath = %q", l.filePath)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
redis:
  addr: "10.0.0.2:6379"
  db: 3
log:
  level: debug
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if addr := l.GetString("redis.addr"); addr != "10.0.0.2:6379" {
		t.Errorf("redis.addr = %q", addr)
	}
	if level := l.GetString("log.level"); level != "debug" {
		t.Errorf("log.level = %q", level)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for nonexistent file")
	}
	if err := l.LoadFile(""); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
redis:
  addr: "file:6379"
log:
  level: info
`)
	t.Setenv("CHATMESH_REDIS_ADDR", "env:6379")

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Redis.Addr != "env:6379" {
		t.Errorf("Redis.Addr = %q, want env override", cfg.Redis.Addr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want file value", cfg.Log.Level)
	}
}

func TestLoadEnvCustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_REDIS_DB", "5")

	var cfg testConfig
	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Redis.DB != 5 {
		t.Errorf("Redis.DB = %d, want 5", cfg.Redis.DB)
	}
}

func TestLoadMapOverlay(t *testing.T) {
	path := writeConfig(t, `
log:
  level: info
`)

	l := NewLoader(WithConfigFile(path))
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Flag overlays land last, over file and env.
	if err := l.LoadMap(map[string]any{"log.level": "error"}); err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if level := l.GetString("log.level"); level != "error" {
		t.Errorf("log.level = %q, want flag override", level)
	}
}
