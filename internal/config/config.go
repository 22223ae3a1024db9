package config

import (
	"os"
	"strings"
)

type Config struct {
	Port     string
	MockMode bool

	GeminiAPIKey string
	GeminiModel  string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the process environment once at startup. GEMINI_API_KEY may be
// empty; a missing key only matters on the live path and is reported there.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "5000"),
		MockMode:     strings.EqualFold(getEnv("MOCK_MODE", "true"), "true"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}
