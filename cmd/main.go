package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"chefy/cmd/config"
	"chefy/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg := utils.LoadConfig()

	app, store, err := config.NewApp(cfg, nil)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
