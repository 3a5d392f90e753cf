package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvConfigPath  = "NUMGUESS_CONFIG"
	EnvDBPath      = "NUMGUESS_DB"
	EnvSSHAddr     = "NUMGUESS_SSH_ADDR"
	EnvHostKey     = "NUMGUESS_HOST_KEY"
	EnvLogLevel    = "NUMGUESS_LOG_LEVEL"
	EnvIdleTimeout = "NUMGUESS_IDLE_TIMEOUT"
)

// Env holds flag defaults taken from the environment.
// Empty strings and zero values mean "not set".
type Env struct {
	ConfigPath  string
	DBPath      string
	SSHAddr     string
	HostKey     string
	LogLevel    string
	IdleTimeout int // minutes
}

// LoadEnv reads the given .env files (default ".env") into the process
// environment without overriding variables that are already set, then
// collects the NUMGUESS_* values. Missing .env files are not an error.
func LoadEnv(files ...string) Env {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		//nolint:errcheck // Best-effort, a broken .env must not stop the game
		godotenv.Load(f)
	}

	env := Env{
		ConfigPath: os.Getenv(EnvConfigPath),
		DBPath:     os.Getenv(EnvDBPath),
		SSHAddr:    os.Getenv(EnvSSHAddr),
		HostKey:    os.Getenv(EnvHostKey),
		LogLevel:   os.Getenv(EnvLogLevel),
	}
	if v := os.Getenv(EnvIdleTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.IdleTimeout = n
		}
	}
	return env
}

// Or returns value if it is not empty, otherwise fallback.
func Or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
