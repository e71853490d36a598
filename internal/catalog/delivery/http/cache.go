package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/logger"
)

// CacheKeyPrefix namespaces catalog response entries in Redis
const CacheKeyPrefix = "catalog:"

// ResponseCache caches successful GET responses in Redis
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache returns nil when client is nil, which disables caching
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResponseCache{client: client, ttl: ttl}
}

type bufferedWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware serves cached responses and stores fresh 200 responses
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := cacheKey(r)

		cached, err := c.client.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("path", r.URL.Path).Str("cache_key", key).Msg("Cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		if err != nil && err != redis.Nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache lookup failed")
		}

		w.Header().Set("X-Cache", "MISS")
		bw := &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(bw, r)

		if bw.statusCode != http.StatusOK || bw.body.Len() == 0 {
			return
		}
		if err := c.client.Set(ctx, key, bw.body.Bytes(), c.ttl).Err(); err != nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache response")
			return
		}
		logger.Debug(ctx).
			Str("path", r.URL.Path).
			Str("cache_key", key).
			Dur("ttl", c.ttl).
			Int("size", bw.body.Len()).
			Msg("Response cached")
	})
}

// Invalidate drops every cached catalog response
func (c *ResponseCache) Invalidate(ctx context.Context) (int, error) {
	return InvalidateCache(ctx, c.client, CacheKeyPrefix+"*")
}

// InvalidateCache deletes all keys matching pattern and returns how many were removed
func InvalidateCache(ctx context.Context, client *redis.Client, pattern string) (int, error) {
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		return 0, nil
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}

	logger.Info(ctx).Int("count", len(keys)).Str("pattern", pattern).Msg("Cache invalidated")
	return len(keys), nil
}

func cacheKey(r *http.Request) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)))
	return CacheKeyPrefix + hex.EncodeToString(hash[:])
}
