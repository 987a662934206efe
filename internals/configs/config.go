package configs

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	// DATABASE_URL wins over the DB_* parts.
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"require"`

	DBMaxOpenConns int `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	DBMaxIdleConns int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`

	JWTSecret string `env:"JWT_SECRET"`

	UploadDir          string `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadMaxBytes     int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
	UploadMaxDimension int    `env:"UPLOAD_MAX_DIMENSION" envDefault:"0"`

	StaticDir   string `env:"STATIC_DIR" envDefault:"../dist"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

var ErrDatabaseNotConfigured = errors.New("DATABASE_URL or DB_HOST/DB_NAME must be set")

// =======================
// ENV LOADER
// =======================
func LoadEnv() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() (string, error) {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL, nil
	}
	if c.DBHost == "" || c.DBName == "" {
		return "", ErrDatabaseNotConfigured
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode) + "&application_name=wedding",
	}
	return u.String(), nil
}

// RedactedDSN masks the password for logging.
func (c *Config) RedactedDSN() string {
	dsn, err := c.DSN()
	if err != nil {
		return "UNDEFINED"
	}
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
