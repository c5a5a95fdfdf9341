package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/folio/internal/models"
)

// clearEnv isolates a test from the caller's environment
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FOLIO_STORAGE_BACKEND", "FOLIO_POSTGRES_DSN", "FOLIO_REDIS_ADDR",
		"FOLIO_DEBOUNCE_MS", "FOLIO_EXPORT_DIR", "GEMINI_API_KEY", "API_KEY",
	} {
		t.Setenv(key, "")
	}
	// Keep godotenv from picking up a stray .env in the package directory
	t.Chdir(t.TempDir())
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddProject != "a" {
		t.Errorf("Default AddProject key = %s, want a", defaults.AddProject)
	}
	if defaults.GenerateDetails != "g" {
		t.Errorf("Default GenerateDetails key = %s, want g", defaults.GenerateDetails)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Storage.Backend = %s, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != models.DefaultSlotKey {
		t.Errorf("Storage.Key = %s, want %s", cfg.Storage.Key, models.DefaultSlotKey)
	}
	if cfg.DebounceWindow() != 300*time.Millisecond {
		t.Errorf("DebounceWindow = %v, want 300ms", cfg.DebounceWindow())
	}
	if cfg.Generation.Model != "gemini-2.5-pro" {
		t.Errorf("Generation.Model = %s, want gemini-2.5-pro", cfg.Generation.Model)
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("ColorScheme.Accent should default to the preset accent")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "folio")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `storage:
  backend: redis
  redis_addr: "cache:6379"
editor:
  debounce_ms: 150
key_mappings:
  quit: "x"
theme:
  preset: monochrome
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Storage.Backend != BackendRedis {
		t.Errorf("Storage.Backend = %s, want redis", cfg.Storage.Backend)
	}
	if cfg.Storage.RedisAddr != "cache:6379" {
		t.Errorf("Storage.RedisAddr = %s, want cache:6379", cfg.Storage.RedisAddr)
	}
	if cfg.DebounceWindow() != 150*time.Millisecond {
		t.Errorf("DebounceWindow = %v, want 150ms", cfg.DebounceWindow())
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.AddProject != "a" {
		t.Errorf("Loaded AddProject key = %s, want a (default)", cfg.KeyMappings.AddProject)
	}
	if cfg.Storage.Key != models.DefaultSlotKey {
		t.Errorf("Storage.Key = %s, want default", cfg.Storage.Key)
	}
	if cfg.ColorScheme.Accent != "15" {
		t.Errorf("ColorScheme.Accent = %s, want monochrome accent", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "folio")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("storage: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}
}

func TestLoadConfigExplicitZeros(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "folio")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configContent := `generation:
  temperature: 0
  thinking_budget: 0
  requests_per_minute: 0
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if *cfg.Generation.Temperature != 0 {
		t.Errorf("Temperature = %v, want explicit 0", *cfg.Generation.Temperature)
	}
	if *cfg.Generation.ThinkingBudget != 0 {
		t.Errorf("ThinkingBudget = %v, want explicit 0", *cfg.Generation.ThinkingBudget)
	}
	if cfg.Generation.PerMinute() != 0 {
		t.Errorf("PerMinute() = %d, want 0 (unlimited)", cfg.Generation.PerMinute())
	}

	// Unset sampling values still get defaults
	if *cfg.Generation.TopK != 64 {
		t.Errorf("TopK = %v, want default 64", *cfg.Generation.TopK)
	}
}

func TestDefaultRateLimit(t *testing.T) {
	if got := Default().Generation.PerMinute(); got != DefaultRequestsPerMinute {
		t.Errorf("Default PerMinute() = %d, want %d", got, DefaultRequestsPerMinute)
	}
	if got := (GenerationConfig{}).PerMinute(); got != DefaultRequestsPerMinute {
		t.Errorf("unset PerMinute() = %d, want %d", got, DefaultRequestsPerMinute)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FOLIO_STORAGE_BACKEND", "file")
	t.Setenv("FOLIO_DEBOUNCE_MS", "75")
	t.Setenv("FOLIO_EXPORT_DIR", "/tmp/out")
	t.Setenv("API_KEY", "from-api-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Storage.Backend = %s, want file", cfg.Storage.Backend)
	}
	if cfg.Editor.DebounceMS != 75 {
		t.Errorf("Editor.DebounceMS = %d, want 75", cfg.Editor.DebounceMS)
	}
	if cfg.Export.Dir != "/tmp/out" {
		t.Errorf("Export.Dir = %s, want /tmp/out", cfg.Export.Dir)
	}
	if cfg.Generation.APIKey != "from-api-key" {
		t.Errorf("Generation.APIKey = %s, want from-api-key", cfg.Generation.APIKey)
	}

	t.Setenv("GEMINI_API_KEY", "from-gemini")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Generation.APIKey != "from-gemini" {
		t.Errorf("GEMINI_API_KEY should win over API_KEY, got %s", cfg.Generation.APIKey)
	}
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FOLIO_DEBOUNCE_MS=42\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	// godotenv never overrides variables that are already set
	if err := os.Unsetenv("FOLIO_DEBOUNCE_MS"); err != nil {
		t.Fatalf("Unsetenv failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Editor.DebounceMS != 42 {
		t.Errorf("Editor.DebounceMS = %d, want 42 from .env", cfg.Editor.DebounceMS)
	}
}

func TestSaveConfig(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := Default()
	cfg.Storage.Backend = BackendFile
	cfg.KeyMappings.Quit = "x"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "folio", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.Storage.Backend != BackendFile {
		t.Errorf("Reloaded Storage.Backend = %s, want file", cfg2.Storage.Backend)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
}
