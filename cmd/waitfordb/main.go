package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/omarFareed23/recipe-api/config"
	pginfra "github.com/omarFareed23/recipe-api/internal/infrastructure/postgres"
	"github.com/omarFareed23/recipe-api/pkg/helpers"
)

// waitfordb blocks until the database answers a ping, retrying a bounded
// number of times. Exits non-zero when the database never comes up, so it
// can gate service startup in compose files and CI.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewLazyPool(ctx, cfg.PostgresDSN())
	if err != nil {
		logger.WithError(err).Error("invalid database configuration")
		os.Exit(1)
	}
	defer pool.Close()

	if !pginfra.WaitForDatabase(ctx, pool, logger, cfg.DBWaitAttempts, cfg.DBWaitInterval) {
		os.Exit(1)
	}
}
