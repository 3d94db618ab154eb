package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Storify struct {
		APIBase          string        `env:"STORIFY_API_BASE" env-default:"https://api.storify.com/v1"`
		RequestTimeout   time.Duration `env:"STORIFY_REQUEST_TIMEOUT" env-default:"30s"`
		StrictPagination bool          `env:"STORIFY_STRICT_PAGINATION" env-default:"false"`
	}
	Import struct {
		AuthorName  string `env:"IMPORT_AUTHOR_NAME" env-default:"Storify Import"`
		AuthorEmail string `env:"IMPORT_AUTHOR_EMAIL"`
	}
}

// GetDSN builds a keyword/value Postgres connection string for database/sql.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
