// Package config loads process configuration once at startup.
//
// Values resolve in order: process environment, then .env file entries, then
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEnvFile = ".env"

// projectIDKeys are the variables that may carry the project ID, highest
// priority first.
var projectIDKeys = []string{"PROJECT_ID", "GOOGLE_CLOUD_PROJECT", "GCP_PROJECT", "GCLOUD_PROJECT"}

// Config is the explicit server configuration handed to the router and logger.
type Config struct {
	Host            string
	Port            int
	Debug           bool
	LogLevel        string
	ShutdownTimeout time.Duration
	// ProjectID enables Cloud Trace correlation in request logs when set.
	ProjectID string
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load resolves configuration from the environment and the given .env files.
// With no files, ".env" in the working directory is read if it exists.
func Load(envFiles ...string) (Config, error) {
	v := viper.New()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 5000)
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("project_id", "")

	optional := len(envFiles) == 0
	if optional {
		envFiles = []string{defaultEnvFile}
	}
	for _, file := range envFiles {
		values, err := godotenv.Read(file)
		if err != nil {
			if optional && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("read env file %s: %w", file, err)
		}
		for key, value := range values {
			v.SetDefault(strings.ToLower(key), value)
		}
		if id := firstValue(values, projectIDKeys); id != "" {
			v.SetDefault("project_id", id)
		}
	}

	v.AutomaticEnv()
	if err := v.BindEnv(append([]string{"project_id"}, projectIDKeys...)...); err != nil {
		return Config{}, fmt.Errorf("bind project id: %w", err)
	}

	cfg := Config{
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		Debug:           v.GetBool("debug"),
		LogLevel:        v.GetString("log_level"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		ProjectID:       v.GetString("project_id"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s: must be positive", c.ShutdownTimeout)
	}
	return nil
}

func firstValue(values map[string]string, keys []string) string {
	for _, key := range keys {
		if value := values[key]; value != "" {
			return value
		}
	}
	return ""
}
