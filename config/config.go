package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	GinMode  string
	StoreURL string
	StoreKey string

	AllowedOrigins []string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

// UsePersistentStore reports whether both store credentials are present.
// Anything less selects the in-memory backend.
func (c *Config) UsePersistentStore() bool {
	return strings.TrimSpace(c.StoreURL) != "" && strings.TrimSpace(c.StoreKey) != ""
}

// StoreDSN returns the store URL with the access key set as the password.
func (c *Config) StoreDSN() (string, error) {
	u, err := url.Parse(strings.TrimSpace(c.StoreURL))
	if err != nil {
		return "", fmt.Errorf("parse STORE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("STORE_URL must be a postgres:// URL, got scheme %q", u.Scheme)
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.StoreKey)

	return u.String(), nil
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Port:     v.GetString("PORT"),
		GinMode:  v.GetString("GIN_MODE"),
		StoreURL: v.GetString("STORE_URL"),
		StoreKey: v.GetString("STORE_KEY"),

		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFilename:   v.GetString("LOG_FILENAME"),
		LogMaxSize:    v.GetInt("LOG_MAX_SIZE"),
		LogMaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		LogMaxAge:     v.GetInt("LOG_MAX_AGE"),
		LogCompress:   v.GetBool("LOG_COMPRESS"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORE_URL", "")
	v.SetDefault("STORE_KEY", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://*.vercel.app")

	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_FILENAME", "logs/app.log")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE", 28)
	v.SetDefault("LOG_COMPRESS", true)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
