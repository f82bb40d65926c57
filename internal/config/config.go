package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/avquote/backend/internal/models"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port        string
	Env         string
	StoreDriver string
	DataDir     string
	DatabaseDSN string

	// Remote asset database. Empty values are placeholders: the shelf
	// client constructor rejects them on first use, since file-backed
	// mode needs neither.
	ShelfURL    string
	ShelfAPIKey string

	// Outbound notification webhook. The booking bridge re-reads the
	// settings document per call, so this is only the startup fallback.
	WebhookURL string
}

// Load resolves configuration with the precedence environment > settings
// file (<data dir>/settings.json) > placeholder. It never fails: missing
// values stay placeholders that the consuming component rejects loudly.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.StoreDriver = getEnv("STORE_DRIVER", DriverFile)
	cfg.DataDir = getEnv("DATA_DIR", "data")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", filepath.Join(cfg.DataDir, "avquote.db"))

	fallback := settingsFallback(cfg.DataDir)
	cfg.ShelfURL = firstOf(os.Getenv("SUPABASE_URL"), fallback.SupabaseURL)
	cfg.ShelfAPIKey = firstOf(os.Getenv("SUPABASE_ANON_KEY"), fallback.SupabaseAnonKey)
	cfg.WebhookURL = firstOf(os.Getenv("MATTERMOST_WEBHOOK_URL"), fallback.MattermostWebhookURL)
	return cfg
}

// settingsFallback reads the settings document directly off disk. Only the
// file store keeps it there; under the gorm store the environment is the
// sole source and an absent file simply yields placeholders.
func settingsFallback(dataDir string) models.Settings {
	var s models.Settings
	data, err := os.ReadFile(filepath.Join(dataDir, "settings.json"))
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("settings fallback file unreadable", "error", err)
	}
	return s
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid boolean env var", "key", key, "value", v)
			return def
		}
		return b
	}
	return def
}
