// Seeds a starter delivery fee table into the configured storage backend.
// Useful for local development so the storefront has neighborhoods to
// resolve at checkout.
//
// Usage:
//
//	STORAGE_BACKEND=file STORAGE_DIR=data go run ./scripts/seedfees
//	STORAGE_BACKEND=postgres DATABASE_URL=postgres://... go run ./scripts/seedfees
package main

import (
	"context"
	"fmt"
	"os"

	"agua-gas/internal/model"
	"agua-gas/internal/repository"
	"agua-gas/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	ctx := context.Background()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	kv, err := openStore(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	repo := repository.NewDeliveryFeeRepository(kv, logger)

	existing, err := repo.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read delivery fees: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Printf("Delivery fee table already has %d entries, leaving it alone\n", len(existing))
		return
	}

	fees := []model.DeliveryFee{
		{ID: uuid.NewString(), Neighborhood: "Centro", Fee: decimal.RequireFromString("5.00")},
		{ID: uuid.NewString(), Neighborhood: "Jardim das Flores", Fee: decimal.RequireFromString("7.50")},
		{ID: uuid.NewString(), Neighborhood: "Vila Nova", Fee: decimal.RequireFromString("10.00")},
		{ID: uuid.NewString(), Neighborhood: "Bela Vista", Fee: decimal.Zero},
	}

	if err := repo.Save(ctx, fees); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save delivery fees: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d delivery fees\n", len(fees))
}

func openStore(ctx context.Context, logger zerolog.Logger) (store.KV, error) {
	switch os.Getenv("STORAGE_BACKEND") {
	case "postgres":
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		pool, err := pgxpool.New(ctx, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
		return store.NewPostgresStore(ctx, pool, logger)

	case "redis":
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			redisURL = "redis://localhost:6379/0"
		}
		return store.NewRedisStore(ctx, redisURL, logger)

	default:
		dir := os.Getenv("STORAGE_DIR")
		if dir == "" {
			dir = "data"
		}
		return store.NewFileStore(dir, logger)
	}
}
