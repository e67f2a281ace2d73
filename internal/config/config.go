// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/traininghub/backend/internal/auth"
)

var (
	ErrMissing = errors.New("required environment variable is not set")
	ErrInvalid = errors.New("environment variable has an invalid value")
)

// Database describes a PostgreSQL connection. If Host is empty, SQLite is used.
type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN returns the connection string for the PostgreSQL driver.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC", d.Host, d.Port, d.User, d.Password, d.Name)
}

type Config struct {
	APIURL    *url.URL
	Port      int
	DataDir   string
	Database  Database
	JWTSecret []byte
	TokenTTL  time.Duration
}

// SQLitePath is the database file used when no PostgreSQL host is configured.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "traininghub.db")
}

// UsePostgres reports if a PostgreSQL host is configured.
func (c Config) UsePostgres() bool {
	return c.Database.Host != ""
}

// LoadEnv loads the given .env files into the environment. Variables
// that are already set are not overwritten. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	c := Config{
		Port:     8080,
		DataDir:  lookup("DATA_DIR", "data"),
		TokenTTL: auth.DefaultTokenTTL,
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		return Config{}, fmt.Errorf("%w: API_URL", ErrMissing)
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("%w: API_URL must be an absolute URL, got %q", ErrInvalid, apiURL)
	}
	c.APIURL = u

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("%w: JWT_SECRET", ErrMissing)
	}
	c.JWTSecret = []byte(secret)

	if v, ok := os.LookupEnv("PORT"); ok {
		c.Port, err = strconv.Atoi(v)
		if err != nil || c.Port <= 0 || c.Port > 65535 {
			return Config{}, fmt.Errorf("%w: PORT must be a port number, got %q", ErrInvalid, v)
		}
	}

	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		c.TokenTTL, err = time.ParseDuration(v)
		if err != nil || c.TokenTTL <= 0 {
			return Config{}, fmt.Errorf("%w: TOKEN_TTL must be a positive duration like 12h, got %q", ErrInvalid, v)
		}
	}

	c.Database = Database{
		Host:     os.Getenv("DB_HOST"),
		Port:     5432,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     lookup("DB_NAME", "traininghub"),
	}

	if v, ok := os.LookupEnv("DB_PORT"); ok {
		c.Database.Port, err = strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: DB_PORT must be a number, got %q", ErrInvalid, v)
		}
	}

	return c, nil
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
