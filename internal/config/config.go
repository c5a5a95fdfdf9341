package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/folio/internal/config/colors"
	"github.com/thenoetrevino/folio/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendFile     = "file"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Editor      EditorConfig       `yaml:"editor"`
	Generation  GenerationConfig   `yaml:"generation"`
	Export      ExportConfig       `yaml:"export"`
	Server      ServerConfig       `yaml:"server"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects and configures the document slot
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	Key           string `yaml:"key"`
	SQLitePath    string `yaml:"sqlite_path"`
	PostgresDSN   string `yaml:"postgres_dsn"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	FileDir       string `yaml:"file_dir"`
}

// EditorConfig configures the editing session
type EditorConfig struct {
	// DebounceMS is the coalescing window for persisted edits
	DebounceMS int `yaml:"debounce_ms"`
}

// DefaultRequestsPerMinute is the provider rate limit when none is configured
const DefaultRequestsPerMinute = 10

// GenerationConfig configures the description provider.
// Pointer fields are ones where an explicit 0 differs from unset:
// temperature 0 is greedy sampling, thinking_budget 0 turns thinking off,
// and requests_per_minute 0 removes the rate limit.
type GenerationConfig struct {
	APIKey            string   `yaml:"api_key"`
	Model             string   `yaml:"model"`
	Temperature       *float32 `yaml:"temperature"`
	TopP              *float32 `yaml:"top_p"`
	TopK              *float32 `yaml:"top_k"`
	MaxOutputTokens   int32    `yaml:"max_output_tokens"`
	ThinkingBudget    *int32   `yaml:"thinking_budget"`
	RequestsPerMinute *int     `yaml:"requests_per_minute"`
	TimeoutSeconds    int      `yaml:"timeout_seconds"`
}

// PerMinute returns the configured rate limit. Zero or less means unlimited.
func (g GenerationConfig) PerMinute() int {
	if g.RequestsPerMinute == nil {
		return DefaultRequestsPerMinute
	}
	return *g.RequestsPerMinute
}

// ExportConfig configures where exported files are written
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig configures the preview server
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DebounceWindow returns the coalescing window as a duration
func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.Editor.DebounceMS) * time.Millisecond
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist. A .env file in the working
// directory is loaded first so its variables can override file values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("could not load .env file", "error", err)
	}

	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "folio", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "folio", "config.yaml"), nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("FOLIO_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("FOLIO_POSTGRES_DSN"); v != "" {
		c.Storage.PostgresDSN = v
	}
	if v := os.Getenv("FOLIO_REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("FOLIO_DEBOUNCE_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Editor.DebounceMS = parsed
		}
	}
	if v := os.Getenv("FOLIO_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Generation.APIKey = v
	} else if v := os.Getenv("API_KEY"); v != "" {
		c.Generation.APIKey = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Key == "" {
		c.Storage.Key = models.DefaultSlotKey
	}
	if c.Storage.RedisAddr == "" {
		c.Storage.RedisAddr = "localhost:6379"
	}

	if c.Editor.DebounceMS <= 0 {
		c.Editor.DebounceMS = 300
	}

	if c.Generation.Model == "" {
		c.Generation.Model = "gemini-2.5-pro"
	}
	if c.Generation.Temperature == nil {
		c.Generation.Temperature = ptr(float32(0.7))
	}
	if c.Generation.TopP == nil {
		c.Generation.TopP = ptr(float32(0.95))
	}
	if c.Generation.TopK == nil {
		c.Generation.TopK = ptr(float32(64))
	}
	if c.Generation.MaxOutputTokens == 0 {
		c.Generation.MaxOutputTokens = 200
	}
	if c.Generation.ThinkingBudget == nil {
		c.Generation.ThinkingBudget = ptr(int32(50))
	}
	if c.Generation.RequestsPerMinute == nil {
		c.Generation.RequestsPerMinute = ptr(DefaultRequestsPerMinute)
	}
	if c.Generation.TimeoutSeconds <= 0 {
		c.Generation.TimeoutSeconds = 60
	}

	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}

	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func ptr[T any](v T) *T {
	return &v
}
