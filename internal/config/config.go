// Package config loads toolkit settings from the environment. A .env file in
// the working directory is honored so local runs and deployments configure
// the same way.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"scrapekit/pkg/proxy"
	"scrapekit/pkg/retry"
)

type Config struct {
	Proxy ProxyConfig `mapstructure:"proxy"`
	Check CheckConfig `mapstructure:"check"`
}

// ProxyConfig carries both proxy configuration shapes. FilePath and Scheme
// drive file mode; Host, Scheme and Port drive static mode. Which mode
// applies is decided by proxy.Load, not here, so no field is required.
type ProxyConfig struct {
	FilePath string `mapstructure:"file_path"`
	Scheme   string `mapstructure:"scheme" validate:"omitempty,oneof=http socks5"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// CheckConfig configures the CLI's connectivity check.
type CheckConfig struct {
	URL      string        `mapstructure:"url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"required,min=1s,max=5m"`
	Attempts int           `mapstructure:"attempts" validate:"required,min=1,max=10"`
	Delay    time.Duration `mapstructure:"delay" validate:"min=0,max=1m"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"proxy.file_path": "PROXY_FILE_PATH",
	"proxy.scheme":    "PROXY_SCHEME",
	"proxy.host":      "PROXY_HOST",
	"proxy.port":      "PROXY_PORT",
	"proxy.username":  "PROXY_USERNAME",
	"proxy.password":  "PROXY_PASSWORD",
	"check.url":       "CHECK_URL",
	"check.timeout":   "CHECK_TIMEOUT",
	"check.attempts":  "CHECK_ATTEMPTS",
	"check.delay":     "CHECK_DELAY",
}

func setDefaults(v *viper.Viper) {
	// Check defaults only. Proxy-mode requireds stay unset so proxy.Load can
	// tell "not configured" from "configured but broken".
	v.SetDefault("check.url", "http://icanhazip.com")
	v.SetDefault("check.timeout", "15s")
	v.SetDefault("check.attempts", 3)
	v.SetDefault("check.delay", "1s")
}

// Load reads settings from the environment (and .env, when present) and
// validates them.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	for key, envVar := range envBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envVar, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// ProxySettings maps the loaded configuration into the proxy loader's input.
func (c *Config) ProxySettings() proxy.Settings {
	return proxy.Settings{
		File: proxy.FileSettings{
			Path:   c.Proxy.FilePath,
			Scheme: proxy.Scheme(c.Proxy.Scheme),
		},
		Static: proxy.StaticSettings{
			Host:     c.Proxy.Host,
			Scheme:   proxy.Scheme(c.Proxy.Scheme),
			Port:     c.Proxy.Port,
			Username: c.Proxy.Username,
			Password: c.Proxy.Password,
		},
	}
}

// RetryConfig maps the check settings into the retry helper's input.
func (c *Config) RetryConfig() retry.Config {
	return retry.Config{
		Attempts: uint(c.Check.Attempts),
		Delay:    c.Check.Delay,
		Timeout:  c.Check.Timeout,
	}
}
