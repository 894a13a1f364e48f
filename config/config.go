package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Circulation specifics
	Catalog  CatalogConfig
	Identity IdentityConfig
	Ledger   LedgerConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CatalogConfig points at the book catalog source.
type CatalogConfig struct {
	BooksPath string
}

// IdentityConfig points at the registered-user directory.
type IdentityConfig struct {
	UsersPath string
}

// LedgerConfig selects the loan ledger driver. "memory" keeps records
// in-process; "sqlite" persists them to SQLitePath.
type LedgerConfig struct {
	Driver     string
	SQLitePath string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Ledger driver names accepted in config.
const (
	LedgerDriverMemory = "memory"
	LedgerDriverSQLite = "sqlite"
)

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Circulation specifics
	cfg.Catalog.BooksPath = viper.GetString("catalog.books_path")
	if booksPath := viper.GetString("books_path"); booksPath != "" {
		cfg.Catalog.BooksPath = booksPath
	}

	cfg.Identity.UsersPath = viper.GetString("identity.users_path")
	if usersPath := viper.GetString("users_path"); usersPath != "" {
		cfg.Identity.UsersPath = usersPath
	}

	cfg.Ledger.Driver = viper.GetString("ledger.driver")
	cfg.Ledger.SQLitePath = viper.GetString("ledger.sqlite_path")

	switch cfg.Ledger.Driver {
	case LedgerDriverMemory:
	case LedgerDriverSQLite:
		if cfg.Ledger.SQLitePath == "" {
			return nil, fmt.Errorf("ledger.sqlite_path is required for the sqlite driver")
		}
	default:
		return nil, fmt.Errorf("unknown ledger driver %q", cfg.Ledger.Driver)
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("catalog.books_path", "data/books.json")
	viper.SetDefault("identity.users_path", "data/users.json")
	viper.SetDefault("ledger.driver", LedgerDriverMemory)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}
