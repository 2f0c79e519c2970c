package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string
	RestaurantName    string
	RestaurantAddress string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQURL      string
	RabbitMQExchange string

	KitchenDispatchSchedule string
	ReportSchedule          string

	LogLevel slog.Level
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when it exists; variables already set win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		HTTPPort:                envOr("HTTP_PORT", "8080"),
		RestaurantName:          envOr("RESTAURANT_NAME", "Potato Palace"),
		RestaurantAddress:       os.Getenv("RESTAURANT_ADDRESS"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  envOr("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOr("DB_SSLMODE", "disable"),
		RabbitMQURL:             os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:        os.Getenv("RABBITMQ_EXCHANGE"),
		KitchenDispatchSchedule: os.Getenv("KITCHEN_DISPATCH_SCHEDULE"),
		ReportSchedule:          os.Getenv("REPORT_SCHEDULE"),
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

// HasDatabase reports whether seeding and archiving are enabled.
func (c Config) HasDatabase() bool {
	return c.DBHost != ""
}

// DSN is the gorm postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
