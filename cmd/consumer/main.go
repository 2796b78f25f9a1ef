package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/smokequit/smokequit-api/internal/bus"
	"github.com/smokequit/smokequit-api/internal/config"
)

// The consumer binary sits on the chat channel and logs every message the
// API publishes. It holds no state and performs no retries of its own.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient, err := bus.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to message bus: %v", err)
	}
	defer redisClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := bus.NewConsumer(redisClient, cfg.ChatChannel)
	if err := consumer.Run(ctx); err != nil {
		log.Fatalf("Consumer stopped: %v", err)
	}
	log.Println("Consumer shut down")
}
