package main

import (
	"log"

	"github.com/smokequit/smokequit-api/internal/bus"
	"github.com/smokequit/smokequit-api/internal/config"
	"github.com/smokequit/smokequit-api/internal/database"
	"github.com/smokequit/smokequit-api/internal/handlers"
	"github.com/smokequit/smokequit-api/internal/repository"
	"github.com/smokequit/smokequit-api/internal/routes"
	"github.com/smokequit/smokequit-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// The bus is optional: a dead broker should not keep the API down.
	var publisher service.ChatPublisher
	if redisClient, err := bus.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Printf("WARNING: message bus unavailable, chats will not be published: %v", err)
	} else {
		defer redisClient.Close()
		publisher = bus.NewPublisher(redisClient, cfg.ChatChannel)
	}

	brandRepo := repository.NewBrandRepository(db)
	smartphoneRepo := repository.NewSmartphoneRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	chatRepo := repository.NewChatRepository(db)

	app := &handlers.Handlers{
		Config:      cfg,
		Accounts:    service.NewAccountService(accountRepo),
		Brands:      service.NewBrandService(brandRepo),
		Smartphones: service.NewSmartphoneService(smartphoneRepo, brandRepo),
		Coaches:     service.NewCoachService(coachRepo),
		Chats:       service.NewChatService(chatRepo, publisher),
	}

	router := routes.SetupRouter(app)

	log.Printf("Starting SmokeQuit API server on %s...", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
