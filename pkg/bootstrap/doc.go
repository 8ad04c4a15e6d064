// Package bootstrap provides common initialization utilities for services
// consuming fault-lib.
//
// This package consolidates repeated initialization logic across services including:
//   - Logger setup with file rotation
//   - Redis connection management (message catalog resolver)
//   - OpenTelemetry tracing initialization
//   - Fault-event reporter setup
//
// Example usage:
//
//	func main() {
//	    cfg := &config.Config{}
//	    if err := faultconfig.LoadConfig(cfg); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Initialize logger
//	    if err := bootstrap.InitServiceLogger(cfg.Log, "my-service"); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Initialize Redis for the message resolver
//	    redisClient, err := bootstrap.InitRedis(ctx, cfg.Redis)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    res := resolver.NewRedis(redisClient, resolver.RedisOptions{Locale: cfg.Resolver.Locale})
//
//	    // Initialize tracing
//	    shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
//	    if err != nil {
//	        log.Warn(err)
//	    }
//	    defer shutdown(ctx)
//	}
package bootstrap
