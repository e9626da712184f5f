package db

import (
	"flag"
	"os"
)

// Store is a durable key-value mapping. Each dataset (subscribers, jobs,
// the job archive, seen notification IDs) gets its own Store instance.
//
// Get reports whether the key was present; a false second return value with
// a nil error means the key simply does not exist.
type Store interface {
	Get(key string) (string, bool, error)
	Put(key string, value string) error
	Delete(key string) error
	// List returns every key in the store. There is no isolation across the
	// listing: writes that race a List may or may not be observed by it.
	List() ([]string, error)
}

// Config is a configuration struct for the backing database.
type Config struct {
	Port       string
	DbHost     string
	DbName     string
	DbUsername string
	DbPass     string
}

// Default configuration values. Can be overwritten by env vars of the same name.
var configDefaults = map[string]string{
	"PORT":         "8080",
	"DB_HOST":      "localhost",
	"DB_NAME":      "jobwatch",
	"DB_USERNAME":  "postgres",
	"DB_PASSWORD":  "postgres",
	"TEST_DB_NAME": "jobwatch_test",
}

func getEnvOrDefault(varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		envVar = configDefaults[varName]
	}
	return envVar
}

// LoadEnvironmentVariables loads relevant environment variables into a
// Config object.
func LoadEnvironmentVariables() (Config, error) {
	config := Config{
		Port:       getEnvOrDefault("PORT"),
		DbHost:     getEnvOrDefault("DB_HOST"),
		DbName:     getEnvOrDefault("DB_NAME"),
		DbUsername: getEnvOrDefault("DB_USERNAME"),
		DbPass:     getEnvOrDefault("DB_PASSWORD"),
	}
	if flag.Lookup("test.v") != nil {
		// Avoid accidentally wiping the default db during tests.
		config.DbName = getEnvOrDefault("TEST_DB_NAME")
	}
	return config, nil
}
