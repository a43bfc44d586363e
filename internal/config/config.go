package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Locale     string `yaml:"locale" env:"LOCALE" env-default:"en"`
	HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Books      Books      `yaml:"books"`
	Pagination Pagination `yaml:"pagination"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host        string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port        int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User        string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password    string `yaml:"password" env:"DB_PASSWORD"`
	DBName      string `yaml:"dbname" env:"DB_NAME" env-default:"events"`
	SSLMode     string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"true"`
}

// Auth holds the HS256 secret shared with the books service.
type Auth struct {
	Secret string `yaml:"secret" env:"SECRET_KEY" env-required:"true"`
}

// Books is the external identity and author service.
type Books struct {
	URL     string        `yaml:"url" env:"BOOKS_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env:"BOOKS_TIMEOUT" env-default:"5s"`
}

type Pagination struct {
	DefaultLimit int `yaml:"default_limit" env-default:"20"`
	MaxLimit     int `yaml:"max_limit" env-default:"100"`
}

func MustLoad() *Config {
	// .env is optional, variables may come from the environment directly
	_ = godotenv.Load()

	cfg, err := Load(fetchConfigPath())
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at path, applying env overrides. An empty path
// reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Pagination.DefaultLimit <= 0 {
		return errors.New("pagination.default_limit must be positive")
	}
	if c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return errors.New("pagination.max_limit must not be below default_limit")
	}

	return nil
}

// DSN builds a libpq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// fetchConfigPath takes the path from the --config flag or CONFIG_PATH.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
