// Package ratelimit throttles inbound requests to the screening endpoint
// using a token-bucket limiter.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles inbound requests with a token bucket.
type Limiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	config  *Config
}

// Config holds limiter configuration.
type Config struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns a permissive default suited to a single-instance
// deployment behind a gateway that does its own global throttling.
func DefaultConfig() *Config {
	return &Config{
		RequestsPerSecond: 50,
		Burst:             100,
	}
}

// NewLimiter creates a new inbound request limiter.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		config:  cfg,
	}
}

// Allow reports whether a request may proceed immediately, consuming a
// token if so. It never blocks.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.limiter.Allow()
}

// Wait blocks until the limiter permits a request or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
