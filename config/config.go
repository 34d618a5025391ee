package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
)

// Config holds the application configuration.
type Config struct {
	TelegramToken     string
	GeminiAPIKey      string
	SerpAPIKey        string
	AllowEmptySecrets bool
	MaxContextSize    int

	// CatalogXLSX optionally points at an .xlsx file that overrides the
	// compiled-in build catalog.
	CatalogXLSX string
}

// Load reads the configuration from the environment (and .env, if present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		SerpAPIKey:        os.Getenv("SERPAPI_API_KEY"),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
		MaxContextSize:    constants.DefaultMaxContextSize,
		CatalogXLSX:       strings.TrimSpace(os.Getenv("CATALOG_XLSX")),
	}

	if !config.AllowEmptySecrets {
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is empty")
		}
		if config.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is empty")
		}
		if config.SerpAPIKey == "" {
			return nil, fmt.Errorf("SERPAPI_API_KEY environment variable is empty")
		}
	}

	return config, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
