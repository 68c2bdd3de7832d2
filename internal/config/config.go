package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the CLI and the devserver.
type Config struct {
	Client ClientConfig
	Server ServerConfig
	Logger LoggerConfig
}

// ClientConfig controls the API client.
type ClientConfig struct {
	BaseURL        string
	TimeoutSeconds int
	StateDir       string
}

// ServerConfig controls the local development server.
type ServerConfig struct {
	Host                  string
	Port                  string
	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Client: ClientConfig{
			BaseURL:        getEnv("FITTRACK_API_URL", "http://127.0.0.1:8080/api"),
			TimeoutSeconds: getEnvAsInt("FITTRACK_HTTP_TIMEOUT_SECONDS", 30),
			StateDir:       os.Getenv("FITTRACK_STATE_DIR"),
		},
		Server: ServerConfig{
			Host:                  getEnv("DEVSERVER_HOST", "127.0.0.1"),
			Port:                  getEnv("DEVSERVER_PORT", "8080"),
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Timeout returns the configured HTTP client timeout duration.
func (c ClientConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveStateDir returns the directory holding client-local state,
// defaulting to a fittrack dir under the user config directory.
func (c ClientConfig) ResolveStateDir() (string, error) {
	if c.StateDir != "" {
		return c.StateDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve state dir: %w", err)
	}
	return filepath.Join(base, "fittrack"), nil
}

// Addr returns the devserver bind address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
