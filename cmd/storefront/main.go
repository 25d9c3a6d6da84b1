package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mcastellanos/storefront/internal/api"
	"github.com/mcastellanos/storefront/internal/catalog"
	"github.com/mcastellanos/storefront/internal/config"
	"github.com/mcastellanos/storefront/internal/logger"
	"github.com/mcastellanos/storefront/internal/order"
	"github.com/mcastellanos/storefront/internal/user"
)

func main() {
	cfg := config.Load()

	lg, err := logger.New(cfg.Mode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		lg.Fatal("mongo connect failed", "err", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		lg.Fatal("mongo ping failed", "err", err)
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		lg.Fatal("postgres connect failed", "err", err)
	}
	defer pool.Close()

	catalogStore := catalog.NewMongoStore(mongoClient.Database(cfg.MongoDB))
	if err := catalogStore.EnsureIndexes(ctx); err != nil {
		lg.Warn("catalog index setup failed", "err", err)
	}

	userRepo := user.NewPGRepo(pool)
	tokens := user.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	userSvc := user.NewService(userRepo, tokens)

	orderRepo := order.NewPGRepo(pool)
	orderSvc := order.NewService(catalogStore, orderRepo, lg)

	r := api.NewRouter(api.Deps{
		Log:      lg,
		Products: api.NewProductHandler(catalogStore),
		Orders:   api.NewOrderHandler(orderSvc),
		Auth:     api.NewAuthHandler(userSvc),
		Users:    userSvc,
	})

	lg.Info("storefront listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		lg.Fatal("server exited", "err", err)
	}
}
