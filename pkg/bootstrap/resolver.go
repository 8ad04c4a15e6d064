package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/fault-lib/pkg/config"
	"github.com/Goden-Gun/fault-lib/pkg/problem"
	"github.com/Goden-Gun/fault-lib/pkg/resolver"
)

// InitResolver wires the configured message resolver. Source "none" returns
// (nil, nil): the translator then uses the faults' static text. Source
// "static" is constructed in code (resolver.NewStatic) since its catalog is
// embedded, not configured.
func InitResolver(cfg config.ResolverConfig, client *redis.Client) (problem.Resolver, error) {
	cfg.ApplyDefaults()

	switch cfg.Source {
	case "none":
		return nil, nil
	case "static":
		return nil, errors.New("static resolver carries an embedded catalog, construct it via resolver.NewStatic")
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("resolver source %q requires a redis client", cfg.Source)
		}
		return resolver.NewRedis(client, resolver.RedisOptions{
			Prefix:   cfg.RedisPrefix,
			Locale:   cfg.Locale,
			Timeout:  cfg.Timeout.DurationOr(time.Second),
			CacheTTL: cfg.CacheTTL.DurationOr(5 * time.Minute),
		}), nil
	default:
		return nil, fmt.Errorf("unknown resolver source %q", cfg.Source)
	}
}
