package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	AppPort         string
	ShutdownTimeout string
	LogLevel        string
	StorageBackend  string
	DatabaseURL     string
	DataDir         string
	RolesFile       string
	DaysFile        string
	RolesSeedFile   string
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().Warn("Could not load .env file. Using OS environment variables.", "err", err)
	}
	cfg := &Config{
		AppPort:         getEnv("APP_PORT", ":8000"),
		ShutdownTimeout: getEnv("SHUTDOWN_TIMEOUT", "5"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StorageBackend:  getEnv("STORAGE_BACKEND", BackendFile),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DataDir:         getEnv("DATA_DIR", "data"),
		RolesFile:       getEnv("ROLES_FILE", "roles.json"),
		DaysFile:        getEnv("DAYS_FILE", "days.json"),
		RolesSeedFile:   getEnv("ROLES_SEED_FILE", ""),
	}
	if !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendFile:
		if c.RolesFile == "" || c.DaysFile == "" {
			return errors.New("file storage requires ROLES_FILE and DAYS_FILE to be set")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: %s, %s", BackendFile, BackendPostgres)
	}
	if _, err := c.ShutdownDuration(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) ShutdownDuration() (time.Duration, error) {
	seconds, err := strconv.Atoi(c.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("SHUTDOWN_TIMEOUT must be a number of seconds: %w", err)
	}
	if seconds <= 0 {
		return 0, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return time.Duration(seconds) * time.Second, nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error: %w", err)
	}
	return level, nil
}

// RolesPath and DaysPath resolve relative file names against DATA_DIR.
func (c *Config) RolesPath() string {
	return c.resolve(c.RolesFile)
}

func (c *Config) DaysPath() string {
	return c.resolve(c.DaysFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
