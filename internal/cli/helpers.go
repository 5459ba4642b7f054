package cli

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cmdline/internal/config"
	"github.com/aretw0/cmdline/internal/logging"
	"github.com/aretw0/cmdline/pkg/adapters/file"
	"github.com/aretw0/cmdline/pkg/adapters/redis"
	"github.com/aretw0/cmdline/pkg/persistence/middleware"
	"github.com/aretw0/cmdline/pkg/ports"
)

// createLogger configures the application logger. Logs go to w (Stderr in
// the binary) so they stay apart from the prompt.
func createLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if cfg.Quiet {
		return logging.NewNop()
	}
	return logging.New(w, logging.ParseLevel(cfg.Level))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// createHistoryStore picks the shared Redis store when an address is
// configured and plain files otherwise, then applies the security
// middlewares. The returned close func is never nil.
func createHistoryStore(cfg config.Config, logger *slog.Logger) (ports.HistoryStore, func() error, error) {
	var store ports.HistoryStore = file.NewStore()
	closeStore := func() error { return nil }

	if cfg.Redis.Addr != "" {
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		logger.Info("Using Redis history store", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
		rs := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		store, closeStore = rs, rs.Close
	}

	mws, err := createMiddlewares(cfg.Security)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return middleware.Chain(store, mws...), closeStore, nil
}

// createMiddlewares redacts before encrypting, so masked text is what gets sealed.
func createMiddlewares(cfg config.SecurityConfig) ([]middleware.Middleware, error) {
	var mws []middleware.Middleware
	if len(cfg.Redact) > 0 {
		mw, err := middleware.NewRedactMiddleware(cfg.Redact)
		if err != nil {
			return nil, fmt.Errorf("invalid redact pattern: %w", err)
		}
		mws = append(mws, mw)
	}
	if cfg.Key != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("history key is not valid base64: %w", err)
		}
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, fmt.Errorf("invalid history key: %w", err)
		}
		mws = append(mws, mw)
	}
	return mws, nil
}
