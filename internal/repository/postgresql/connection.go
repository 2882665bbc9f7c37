package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/device_onboarder/internal/config"
)

const (
	maxRetries = 5
	retryDelay = 5 * time.Second
)

func ConnectionURL(cfg config.PostgreSQL) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	ping := Retry(log, pool.Ping, maxRetries, retryDelay)

	if err := ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	log.InfoContext(ctx, "connected to database",
		slog.String("host", cfg.Host),
		slog.String("dbname", cfg.DBName),
	)

	return pool, nil
}

type PingFunction func(context.Context) error

// Retry wraps ping so that it is attempted up to retries+1 times.
func Retry(log *slog.Logger, ping PingFunction, retries int, delay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		for attempt := 0; ; attempt++ {
			err := ping(ctx)
			if err == nil || attempt >= retries {
				return err
			}

			log.WarnContext(ctx, "database is not reachable, retrying",
				slog.Int("attempt", attempt+1),
				slog.Int("max_retries", retries),
				slog.Duration("delay", delay),
				slog.String("err", err.Error()))

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}
}
