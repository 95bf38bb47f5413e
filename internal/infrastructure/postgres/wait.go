package postgres

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger is the connectivity probe used by WaitForDatabase; *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitForDatabase polls the store until it answers or attempts run out.
// Returns true once a ping succeeds.
func WaitForDatabase(ctx context.Context, db Pinger, logger *logrus.Logger, attempts int, interval time.Duration) bool {
	logger.Info("waiting for database...")
	for i := 0; i < attempts; i++ {
		if err := db.Ping(ctx); err == nil {
			logger.Info("Database available!")
			return true
		} else {
			logger.WithError(err).Infof("Database unavailable, waiting %s...", interval)
		}
		select {
		case <-ctx.Done():
			logger.Error("Database unavailable!")
			return false
		case <-time.After(interval):
		}
	}
	logger.Error("Database unavailable!")
	return false
}
