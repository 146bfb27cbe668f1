package config

import "os"

// Config carries everything the server needs from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DatabaseURL is a postgres DSN. When empty the server falls back to a
	// local sqlite file (SQLitePath).
	DatabaseURL string
	// SQLitePath is the sqlite database file used without DatabaseURL.
	SQLitePath string
}

// Load reads the configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DB_URL"),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "database/budget.sqlite"
	}
	return cfg
}
