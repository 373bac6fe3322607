// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// envPrefix marks environment variables that hold configuration.
// TODOD_CACHE_SIZE sets the "cache_size" key, and so on.
const envPrefix = "TODOD_"

// Config holds the daemon settings.  They come from, in increasing
// order of precedence, built-in defaults, a YAML file, TODOD_*
// environment variables (possibly loaded from a .env file), and
// command-line flags.
type Config struct {
	// HTTP is the [ip]:port to serve the REST interface on.
	HTTP string `mapstructure:"http" yaml:"http"`

	// Backend is the impl[:address] of the storage backend.
	Backend string `mapstructure:"backend" yaml:"backend"`

	// CacheSize is the number of records to cache in front of
	// the backend.  Zero disables the cache.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size"`

	// LogRequests turns on a log line for every HTTP request.
	LogRequests bool `mapstructure:"log_requests" yaml:"log_requests"`

	// LogLevel is the minimum logrus level to write.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// ObserveInterval is how often to refresh the todo count
	// gauge, as a Go duration string.
	ObserveInterval string `mapstructure:"observe_interval" yaml:"observe_interval"`
}

// DefaultConfig returns the settings used when nothing else is
// specified.
func DefaultConfig() Config {
	return Config{
		HTTP:            ":3000",
		Backend:         "memory",
		CacheSize:       1024,
		LogLevel:        "info",
		ObserveInterval: "15s",
	}
}

// Merge overlays settings onto c.  Values are converted loosely, so
// the string "true" can set a bool.
func (c *Config) Merge(settings map[string]interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(settings)
}

// Interval parses ObserveInterval, which must be positive.
func (c Config) Interval() (time.Duration, error) {
	interval, err := time.ParseDuration(c.ObserveInterval)
	if err != nil {
		return 0, err
	}
	if interval <= 0 {
		return 0, fmt.Errorf("observe_interval must be positive, not %v", c.ObserveInterval)
	}
	return interval, nil
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// loadDotEnv reads a .env file into the process environment.  Values
// already in the environment win.  A missing file is not an error.
func loadDotEnv(filename string) error {
	if filename == "" {
		return nil
	}
	err := godotenv.Load(filename)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// environSettings collects the TODOD_* variables from environ, which
// is in the format of os.Environ().
func environSettings(environ []string) map[string]interface{} {
	result := make(map[string]interface{})
	for _, kv := range environ {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], envPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
		result[key] = parts[1]
	}
	return result
}
