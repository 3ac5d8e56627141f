package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	DatabaseURL      string
	Port             int
	GinMode          string
	ModelPath        string
	ModelColumnsPath string
	LogLevel         string
	LogFile          string
	AllowedOrigins   []string
	RunMigrations    bool
}

// Load reads the process environment (and a .env file, when present).
// DATABASE_URL is the only required variable.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := 8000
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid PORT %q", raw)
		}
		port = p
	}

	runMigrations := true
	if raw := os.Getenv("RUN_MIGRATIONS"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RUN_MIGRATIONS %q: %w", raw, err)
		}
		runMigrations = v
	}

	return &Config{
		DatabaseURL:      databaseURL,
		Port:             port,
		GinMode:          os.Getenv("GIN_MODE"),
		ModelPath:        getEnv("MODEL_PATH", "modelo_atraso.json"),
		ModelColumnsPath: getEnv("MODEL_COLUMNS_PATH", "colunas_modelo.json"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
		AllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RunMigrations:    runMigrations,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
