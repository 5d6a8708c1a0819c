package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	storefront "github.com/shopkit/storefront"
)

func main() {
	cfg := configFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	db, err := storefront.OpenDB(ctx, cfg.DSN)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer db.Close()

	if err := storefront.CreateSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	app := storefront.NewApp(storefront.Dependencies{
		Tokens:   storefront.NewTokenService([]byte(cfg.SigningKey), cfg.TokenTTL, cfg.TokenIssuer, nil),
		Users:    storefront.NewUsersRepository(db),
		Products: storefront.NewProductsRepository(db),
		Orders:   storefront.NewOrdersRepository(db),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func configFromEnv() storefront.Config {
	cfg := storefront.Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":5000"),
		DSN:         envOr("STORE_DSN", "file:storefront.db?cache=shared"),
		SigningKey:  os.Getenv("TOKEN_SIGNING_KEY"),
		TokenIssuer: envOr("TOKEN_ISSUER", "storefront"),
		TokenTTL:    30 * 24 * time.Hour,
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid TOKEN_TTL %q: %v", raw, err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
