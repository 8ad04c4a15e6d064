package resolver

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	log "github.com/Goden-Gun/fault-lib/pkg/logger"
)

const (
	defaultRedisPrefix  = "fault:messages"
	defaultRedisTimeout = 200 * time.Millisecond
	defaultCacheTTL     = 5 * time.Minute
)

// RedisOptions tunes the redis-backed resolver.
type RedisOptions struct {
	// Prefix for catalog keys, default "fault:messages".
	Prefix string
	// Locale selects the message catalog, e.g. "en" or "zh-CN".
	Locale string
	// Timeout bounds each redis lookup, default 200ms.
	Timeout time.Duration
	// CacheTTL controls how long lookups (hits and misses) are cached
	// in-process, default 5m.
	CacheTTL time.Duration
}

type cachedMessage struct {
	text      string
	found     bool
	expiresAt time.Time
}

// Redis resolves messages from a redis catalog maintained outside this
// library. Keys follow "<prefix>:<locale>:<messageKey>:<field>".
//
// Lookups are cached in-process so the translator's hot path does not hit
// redis on every failure; misses are cached too.
type Redis struct {
	client *redis.Client
	opts   RedisOptions

	mu    sync.RWMutex
	cache map[string]cachedMessage
}

// NewRedis builds a resolver over an already-connected client (see
// bootstrap.InitRedis).
func NewRedis(client *redis.Client, opts RedisOptions) *Redis {
	if opts.Prefix == "" {
		opts.Prefix = defaultRedisPrefix
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultRedisTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &Redis{
		client: client,
		opts:   opts,
		cache:  make(map[string]cachedMessage),
	}
}

// GetMessage returns the catalog text for (key, field). Lookup failures other
// than a missing key are logged and reported as not found so translation
// falls back to the fault's static text.
func (r *Redis) GetMessage(key, field string) (string, bool) {
	if r == nil || r.client == nil {
		return "", false
	}

	redisKey := strings.Join([]string{r.opts.Prefix, r.opts.Locale, key, field}, ":")

	if text, found, ok := r.cached(redisKey); ok {
		return text, found
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.opts.Timeout)
	defer cancel()

	text, err := r.client.Get(ctx, redisKey).Result()
	switch {
	case err == nil:
		r.store(redisKey, text, true)
		return text, true
	case errors.Is(err, redis.Nil):
		r.store(redisKey, "", false)
		return "", false
	default:
		log.WithError(err).WithField("key", redisKey).Warn("message catalog lookup failed")
		return "", false
	}
}

func (r *Redis) cached(redisKey string) (text string, found, ok bool) {
	r.mu.RLock()
	entry, ok := r.cache[redisKey]
	r.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false, false
	}
	return entry.text, entry.found, true
}

func (r *Redis) store(redisKey, text string, found bool) {
	r.mu.Lock()
	r.cache[redisKey] = cachedMessage{
		text:      text,
		found:     found,
		expiresAt: time.Now().Add(r.opts.CacheTTL),
	}
	r.mu.Unlock()
}
