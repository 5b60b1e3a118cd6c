package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds the runtime settings of the dispatch service.
// Values come from the environment, with a .env file as the local fallback.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"dispatch"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// StalePendingThreshold is how long an order may sit unclaimed in the
	// pending pool before the watch job starts flagging it.
	StalePendingThreshold time.Duration `env:"STALE_PENDING_THRESHOLD" envDefault:"30m"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// PostgresDSN builds the gorm connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
