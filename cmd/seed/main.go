package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	app "github.com/omarFareed23/recipe-api/internal/application"
	"github.com/omarFareed23/recipe-api/config"
	pginfra "github.com/omarFareed23/recipe-api/internal/infrastructure/postgres"
	"github.com/omarFareed23/recipe-api/pkg/helpers"
)

// seed creates a superuser account from SEED_EMAIL / SEED_PASSWORD /
// SEED_NAME, going through the same validation and hashing path as the API.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	name := os.Getenv("SEED_NAME")
	if email == "" || password == "" {
		log.Fatal("SEED_EMAIL and SEED_PASSWORD are required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := app.NewUserService(
		pginfra.NewUserRepository(pool),
		pginfra.NewTokenRepository(pool),
		logger,
	)

	u, err := svc.CreateSuperuser(ctx, app.CreateUserInput{Email: email, Password: password, Name: name})
	if err != nil {
		if errors.Is(err, app.ErrDuplicateEmail) {
			fmt.Printf("superuser already exists: %s\n", email)
			return
		}
		log.Fatalf("failed to create superuser: %v", err)
	}
	fmt.Printf("created superuser: id=%d email=%s\n", u.ID, u.Email)
}
