package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the server
type Config struct {
	Port           int    // HTTP listen port
	DBPath         string // sqlite database path
	LogLevel       string // debug, info, warn, error
	AllowedOrigin  string // CORS origin of the voting frontend
	BaseURL        string // public URL encoded into the ballot QR
	HTTPLogEnabled bool   // log every HTTP request
}

// FromEnv loads configuration from the environment. A .env file in the
// working directory is read first if present; real environment variables
// take precedence over it.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		Port:           envInt("PORT", 4001),
		DBPath:         envString("GALAVOTE_DB", "galavote.db"),
		LogLevel:       envString("LOG_LEVEL", "info"),
		AllowedOrigin:  envString("FRONTEND_ORIGIN", "*"),
		BaseURL:        envString("BASE_URL", ""),
		HTTPLogEnabled: envBool("HTTP_LOG", false),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
