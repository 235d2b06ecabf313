package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"5000" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"120s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		Debug           bool          `yaml:"debug"`
	} `yaml:"server"`
	Logger struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		Output string `yaml:"output" default:"stdout" validate:"required"`
	} `yaml:"logger"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
	} `yaml:"metrics"`
	Market struct {
		BaseURL    string        `yaml:"base_url" default:"https://api.coingecko.com/api/v3" validate:"url"`
		VsCurrency string        `yaml:"vs_currency" default:"usd" validate:"required"`
		Days       string        `yaml:"days" default:"1" validate:"required"`
		Interval   string        `yaml:"interval" default:"hourly"`
		Timeout    time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"market"`
	News struct {
		BaseURL     string        `yaml:"base_url" default:"https://news.google.com/rss/search" validate:"url"`
		QuerySuffix string        `yaml:"query_suffix" default:"cryptocurrency"`
		UserAgent   string        `yaml:"user_agent" default:"CryptoMonitor/1.0"`
		Timeout     time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"news"`
	Dashboard struct {
		Title   string `yaml:"title" default:"Crypto Monitor"`
		Workers int    `yaml:"workers" default:"4" validate:"gte=1,lte=32"`
	} `yaml:"dashboard"`
	Assets []string `yaml:"assets" validate:"required,min=1,dive,required,lowercase"`
}

// DefaultAssets is the tracked set used when the config does not list any.
var DefaultAssets = []string{
	"aave", "polkadot", "uniswap", "solana", "optimism",
	"arbitrum", "binancecoin", "bitcoin", "ethereum",
}

// Default returns a config populated only from struct defaults.
func Default() (*Config, error) {
	var c Config
	if err := c.applyDefaults(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.applyDefaults(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A missing file falls back to the compiled-in defaults.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ASSETS"); v != "" {
		c.Assets = splitList(v)
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SERVER_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = v
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		c.Market.BaseURL = v
	}
	if v := os.Getenv("NEWS_BASE_URL"); v != "" {
		c.News.BaseURL = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// LogLevel is the effective level; debug mode always logs at debug.
func (c *Config) LogLevel() string {
	if c.Server.Debug {
		return "debug"
	}
	return c.Logger.Level
}

func (c *Config) applyDefaults() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("config defaults: %w", err)
	}
	if len(c.Assets) == 0 {
		c.Assets = append([]string(nil), DefaultAssets...)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
