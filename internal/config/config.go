// Package config loads runtime settings for the battle server from the
// environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server binary needs. Defaults suit local
// development; production overrides come from the environment.
type Config struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string `env:"BATTLED_LISTEN_ADDR" envDefault:"127.0.0.1:8099"`

	// DBPath is the SQLite replay database file.
	DBPath string `env:"BATTLED_DB_PATH" envDefault:"battles.db"`

	// BatchWorkers caps concurrent battles in a batch run. Zero means
	// one worker per CPU.
	BatchWorkers int `env:"BATTLED_BATCH_WORKERS" envDefault:"0"`

	// ScriptTimeout bounds a single policy-script call.
	ScriptTimeout time.Duration `env:"BATTLED_SCRIPT_TIMEOUT" envDefault:"1s"`

	// RequestTimeout bounds one HTTP request end to end.
	RequestTimeout time.Duration `env:"BATTLED_REQUEST_TIMEOUT" envDefault:"60s"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
