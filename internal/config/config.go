package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds every configuration value the service reads. No other code
// should touch the process environment directly (pkg/jwt keeps its own
// secret lookup for historical reasons).
type Config struct {
	AppEnv  string `env:"APP_ENV,default=dev"`
	AppName string `env:"APP_NAME,default=inventory-api"`
	Port    string `env:"PORT,default=3000"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST,default=localhost"`
	DBPort      string `env:"DB_PORT,default=5432"`
	DBUser      string `env:"DB_USER,default=postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME,default=inventory"`

	JWTSecret string `env:"JWT_SECRET"`
	CronKey   string `env:"CRON_KEY"`

	CORSOrigins string `env:"CORS_ORIGINS,default=*"`

	PaymentDueWindowDays int `env:"PAYMENT_DUE_WINDOW_DAYS,default=7"`
	RecentTransactions   int `env:"DASHBOARD_RECENT_TRANSACTIONS,default=5"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a DSN composed from the
// individual DB_* values.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
