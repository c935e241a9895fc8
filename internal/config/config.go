// Package config loads and validates the application configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Probes    ProbesConfig    `mapstructure:"probes" yaml:"probes"`
	Batch     BatchConfig     `mapstructure:"batch" yaml:"batch"`
	Webhook   WebhookConfig   `mapstructure:"webhook" yaml:"webhook"`
}

// CacheConfig selects and tunes the result cache backend
type CacheConfig struct {
	Backend   string `mapstructure:"backend" yaml:"backend"` // memory, bolt, redis
	TTL       string `mapstructure:"ttl" yaml:"ttl"`
	BoltPath  string `mapstructure:"bolt_path" yaml:"bolt_path"`
	RedisAddr string `mapstructure:"redis_addr" yaml:"redis_addr"`
}

// RateLimitConfig bounds scan admissions
type RateLimitConfig struct {
	ScansPerMinute int `mapstructure:"scans_per_minute" yaml:"scans_per_minute"`
}

// ProbesConfig tunes the network stage clients
type ProbesConfig struct {
	Resolver     string `mapstructure:"resolver" yaml:"resolver"`
	DNSTimeout   string `mapstructure:"dns_timeout" yaml:"dns_timeout"`
	FetchTimeout string `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`
	ProbeTimeout string `mapstructure:"probe_timeout" yaml:"probe_timeout"`
	UserAgent    string `mapstructure:"user_agent" yaml:"user_agent"`
	RDAPBaseURL  string `mapstructure:"rdap_base_url" yaml:"rdap_base_url"`
}

// BatchConfig sets batch scan defaults
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// WebhookConfig configures completion notifications. An empty URL disables them.
type WebhookConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// Load reads and parses configuration from a YAML file.
// If path is empty, searches for domainscan.yaml in the current directory,
// ./configs, and ~/.config/domainscan/.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("domainscan")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "domainscan"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	switch c.Cache.Backend {
	case "memory", "bolt", "redis":
	default:
		errs = append(errs, fmt.Errorf("cache backend %q is not one of memory, bolt, redis", c.Cache.Backend))
	}

	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		errs = append(errs, fmt.Errorf("cache ttl %q is not a duration", c.Cache.TTL))
	}

	if c.Cache.Backend == "bolt" && c.Cache.BoltPath == "" {
		errs = append(errs, errors.New("bolt_path cannot be empty with the bolt backend"))
	}

	if c.Cache.Backend == "redis" && c.Cache.RedisAddr == "" {
		errs = append(errs, errors.New("redis_addr cannot be empty with the redis backend"))
	}

	if c.RateLimit.ScansPerMinute <= 0 {
		errs = append(errs, errors.New("scans_per_minute must be positive"))
	}

	for _, d := range []struct {
		name  string
		value string
	}{
		{"dns_timeout", c.Probes.DNSTimeout},
		{"fetch_timeout", c.Probes.FetchTimeout},
		{"probe_timeout", c.Probes.ProbeTimeout},
	} {
		if _, err := time.ParseDuration(d.value); err != nil {
			errs = append(errs, fmt.Errorf("%s %q is not a duration", d.name, d.value))
		}
	}

	if c.Batch.Concurrency < 1 || c.Batch.Concurrency > 10 {
		errs = append(errs, errors.New("batch concurrency must be between 1 and 10"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// CacheTTL returns the parsed cache TTL. Call Validate first.
func (c *Config) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.TTL)
	return d
}

// DNSTimeout returns the parsed DNS query timeout
func (c *Config) DNSTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Probes.DNSTimeout)
	return d
}

// FetchTimeout returns the parsed content fetch timeout
func (c *Config) FetchTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Probes.FetchTimeout)
	return d
}

// ProbeTimeout returns the parsed reachability/security probe timeout
func (c *Config) ProbeTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Probes.ProbeTimeout)
	return d
}
