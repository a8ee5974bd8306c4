// Command benefits-screener runs the stateless eligibility screening HTTP
// service.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nycopportunity/benefits-screener/logging"
	"github.com/nycopportunity/benefits-screener/ratelimit"
	_ "github.com/nycopportunity/benefits-screener/rules/catalog"
	"github.com/nycopportunity/benefits-screener/transport"
)

func main() {
	logging.Init("screener")

	port := envOr("PORT", "8080")
	limiter := ratelimit.NewLimiter(rateLimitConfigFromEnv())

	router := transport.NewRouter(limiter)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		slog.Info("starting screening service", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down screening service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func rateLimitConfigFromEnv() *ratelimit.Config {
	cfg := ratelimit.DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RequestsPerSecond = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Burst = n
		}
	}

	return cfg
}
