package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vendaro/vendaro-settlement-service/internal/app"
	"github.com/vendaro/vendaro-settlement-service/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	application := app.MustBuild(cfg)
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("settlement service started, metrics on %s:%s\n",
		cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	if err := application.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("settlement service stopped: %v\n", err)
	}
}
