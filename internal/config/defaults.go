package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend:   "memory",
			TTL:       "5m",
			BoltPath:  "domainscan.db",
			RedisAddr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			ScansPerMinute: 30,
		},
		Probes: ProbesConfig{
			Resolver:     "1.1.1.1:53",
			DNSTimeout:   "5s",
			FetchTimeout: "10s",
			ProbeTimeout: "10s",
			UserAgent:    "domainscan/0.1 (+https://github.com/swcstudio/domainscan)",
			RDAPBaseURL:  "https://rdap.org/domain/",
		},
		Batch: BatchConfig{
			Concurrency: 3,
		},
		Webhook: WebhookConfig{
			URL: "",
		},
	}
}

// WriteDefault writes a default configuration to the specified path
func WriteDefault(path string) error {
	cfg := DefaultConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
