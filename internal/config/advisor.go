package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/fundflow/pkg/adapters/memory"
	"github.com/aretw0/fundflow/pkg/adapters/redis"
	"github.com/aretw0/fundflow/pkg/advisor"
	"github.com/aretw0/fundflow/pkg/ports"
	"github.com/aretw0/fundflow/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Advisor is a configured advisor service and the resources it holds.
type Advisor struct {
	*advisor.Service
	close func() error
}

// Close releases the response cache connection, if any.
func (a *Advisor) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// BuildAdvisor wires the provider, cache, token budget and metrics named by
// cfg. A nil reg disables metrics. A Redis cache that cannot be reached is
// logged and skipped so the interview still runs.
func BuildAdvisor(ctx context.Context, cfg AdvisorConfig, reg prometheus.Registerer, logger *slog.Logger) (*Advisor, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	gen, err := registry.Default().Build(cfg.Provider, registry.Settings{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Options: cfg.Options,
	})
	if err != nil {
		return nil, err
	}

	opts := []advisor.Option{
		advisor.WithLogger(logger),
		advisor.WithModels(cfg.Models()),
		advisor.WithParams(cfg.Params()),
		advisor.WithTimeout(cfg.Timeout),
	}

	out := &Advisor{}
	cache, closer, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		logger.Warn("advisor cache disabled", "driver", cfg.Cache.Driver, "err", err)
	} else if cache != nil {
		opts = append(opts, advisor.WithCache(cache))
		out.close = closer
	}

	if cfg.MaxPromptTokens > 0 {
		budget, err := advisor.NewTokenBudget(cfg.MaxPromptTokens)
		if err != nil {
			return nil, fmt.Errorf("token budget: %w", err)
		}
		opts = append(opts, advisor.WithTokenBudget(budget))
	}

	if reg != nil {
		opts = append(opts, advisor.WithMetrics(advisor.NewMetrics(reg)))
	}

	out.Service = advisor.New(gen, opts...)
	logger.Debug("advisor configured", "provider", cfg.Provider, "cache", cfg.Cache.Driver)
	return out, nil
}

func buildCache(ctx context.Context, cfg CacheConfig) (ports.ResponseCache, func() error, error) {
	switch cfg.Driver {
	case CacheNone, "":
		return nil, nil, nil
	case CacheMemory:
		return memory.NewCache(cfg.TTL), nil, nil
	case CacheRedis:
		c := redis.New(cfg.RedisAddr, redis.WithTTL(cfg.TTL), redis.WithPrefix(cfg.Prefix))
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
		return c, c.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
