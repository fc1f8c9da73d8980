package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration shared by the commands.
// Each field corresponds to an environment variable.  The server
// requires APP_ENV and APP_PORT; everything else has a default so the
// console and seeder can run from a bare environment.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DataDir         string // directory holding the JSON collection files
	ConsumerEnabled bool   // start the reservation event consumer
}

// Load reads the server configuration.  Required variables are
// enforced by must() and missing values cause the program to exit
// with a fatal log message.
func Load() Config {
	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		DataDir:         DataDir(),
		ConsumerEnabled: getenv("QUEUE_CONSUMER_ENABLED", "false") == "true",
	}
}

// DataDir returns the directory for the collection files, defaulting
// to "data".  Exposed separately because the console and seeder need
// only this value.
func DataDir() string {
	return getenv("DATA_DIR", "data")
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
