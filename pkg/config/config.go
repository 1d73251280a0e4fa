package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress     string `env:"API_ADDRESS" envDefault:":8080"`
	JWTSecret      string `env:"JWT_SECRET"`
	Timezone       string `env:"TIMEZONE" envDefault:"Local"`
	MigrationsDir  string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"false"`

	Postgres Postgres
	Log      Log
	Tokens   Tokens
	Activity Activity
}

type Postgres struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	Username string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB"`
}

type Log struct {
	Debug bool   `env:"LOG_DEBUG" envDefault:"false"`
	Dir   string `env:"LOG_DIR"`
}

// Tokens configures where the key encrypting provider tokens comes from.
// With KeySource "env" the key is EncryptionKey (base64, 32 bytes), with
// "keyring" it is generated once and kept in the OS keyring.
type Tokens struct {
	KeySource     string `env:"TOKEN_KEY_SOURCE" envDefault:"env"`
	EncryptionKey string `env:"TOKEN_ENCRYPTION_KEY"`
	KeyringUser   string `env:"TOKEN_KEYRING_USER" envDefault:"habitgrid"`
}

type Activity struct {
	Days           int           `env:"ACTIVITY_DAYS" envDefault:"365"`
	TTL            time.Duration `env:"ACTIVITY_TTL" envDefault:"24h"`
	RequestTimeout time.Duration `env:"ACTIVITY_REQUEST_TIMEOUT" envDefault:"15s"`
	Concurrency    int           `env:"ACTIVITY_CONCURRENCY" envDefault:"4"`
	RequestsPerSec float64       `env:"ACTIVITY_RPS" envDefault:"5"`
}

// New loads the configuration once per process and fails hard on errors.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(DefaultEnvFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envFile into the environment when it exists and parses the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ConnString builds a postgresql:// URL with the credentials escaped.
func (pg *Postgres) ConnString() string {
	u := url.URL{
		Scheme: "postgresql",
		Host:   pg.Address,
		Path:   "/" + pg.DB,
	}
	if pg.Username != "" || pg.Password != "" {
		u.User = url.UserPassword(pg.Username, pg.Password)
	}
	return u.String()
}
