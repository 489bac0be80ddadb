package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"portfolio_backend/internal/logger"
)

const pgxDriverName = "pgx"

// The database runs in a separate container and may come up after this
// service. Connect blocks the process for up to maxConnectAttempts tries at
// a fixed interval; exhausting the bound is fatal for the caller.
const (
	maxConnectAttempts = 30
	connectRetryDelay  = 10 * time.Second
)

// Connect opens the Postgres pool, waits for the server to become reachable
// and ensures the schema is migrated. The retry interval is fixed; there is
// no backoff growth.
func Connect(dsn string, log *logger.Logger) (*sql.DB, error) {
	pool, err := sql.Open(pgxDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxLifetime(5 * time.Minute)

	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		log.Infow("connecting to database", "attempt", attempt, "max_attempts", maxConnectAttempts)

		if lastErr = pool.Ping(); lastErr == nil {
			if lastErr = runMigrations(pool); lastErr == nil {
				log.Infow("database ready")
				return pool, nil
			}
		}

		log.Warnw("database not ready", "attempt", attempt, "err", lastErr)
		if attempt < maxConnectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}

	_ = pool.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxConnectAttempts, lastErr)
}
