package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `envconfig:"app_env" default:"development"`
	Port     int    `envconfig:"port" default:"8080"`
	LogLevel string `envconfig:"log_level" default:"info"`

	DBDriver    string `envconfig:"db_driver" default:"postgres"`
	DatabaseURL string `envconfig:"database_url"`
	PgHost      string `envconfig:"pg_host" default:"localhost"`
	PgPort      int    `envconfig:"pg_port" default:"5432"`
	PgUser      string `envconfig:"pg_user" default:"postgres"`
	PgPassword  string `envconfig:"pg_password"`
	PgDB        string `envconfig:"pg_db" default:"naebak"`
	SQLitePath  string `envconfig:"sqlite_path" default:"naebak.db"`
	AutoMigrate bool   `envconfig:"auto_migrate" default:"true"`

	CacheBackend  string `envconfig:"cache_backend" default:"memory"`
	RedisHost     string `envconfig:"redis_host" default:"localhost"`
	RedisPort     string `envconfig:"redis_port" default:"6379"`
	RedisPassword string `envconfig:"redis_password"`

	RateLimitRPS   float64 `envconfig:"rate_limit_rps" default:"5"`
	RateLimitBurst int     `envconfig:"rate_limit_burst" default:"10"`
	CORSOrigins    string  `envconfig:"cors_origins" default:"*"`
}

// Load reads .env (outside production) and then the process environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return c, nil
}

// PostgresDSN prefers DATABASE_URL over the PG_* parts.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PgUser, c.PgPassword, c.PgHost, c.PgPort, c.PgDB)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
