package main

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/swcstudio/domainscan/internal/cache"
	"github.com/swcstudio/domainscan/internal/config"
	"github.com/swcstudio/domainscan/internal/engine"
	"github.com/swcstudio/domainscan/internal/probes"
	"github.com/swcstudio/domainscan/internal/ratelimit"
	"github.com/swcstudio/domainscan/internal/scanner"
)

// buildEngine assembles an engine from the loaded configuration. The returned
// closer releases the cache backend and must be called when the command exits.
func buildEngine(cfg *config.Config) (*engine.Engine, func() error, error) {
	store, closer, err := buildCache(cfg)
	if err != nil {
		return nil, nil, err
	}

	clients := scanner.Clients{
		DNS:          probes.NewDNSClient(cfg.Probes.Resolver, cfg.DNSTimeout()),
		Registration: probes.NewRDAPClient(cfg.Probes.RDAPBaseURL, cfg.Probes.UserAgent, cfg.FetchTimeout()),
		Content:      probes.NewContentClient(cfg.Probes.UserAgent, cfg.FetchTimeout()),
		Reach:        probes.NewReachClient(cfg.Probes.UserAgent, cfg.ProbeTimeout()),
		Security:     probes.NewSecurityClient(cfg.Probes.UserAgent, cfg.ProbeTimeout()),
	}

	eng := engine.New(
		store,
		ratelimit.New(cfg.RateLimit.ScansPerMinute),
		scanner.New(clients),
		nil,
		cfg.CacheTTL(),
	)

	if cfg.Webhook.URL != "" {
		eng.Subscribe(engine.NewWebhookNotifier(cfg.Webhook.URL))
	}

	return eng, closer, nil
}

func buildCache(cfg *config.Config) (cache.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemory(cfg.CacheTTL()), noop, nil

	case "bolt":
		store, err := cache.NewBolt(cfg.Cache.BoltPath, cfg.CacheTTL())
		if err != nil {
			return nil, nil, fmt.Errorf("opening bolt cache: %w", err)
		}
		return store, store.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		return cache.NewRedis(client, cfg.CacheTTL()), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
