package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/application/services"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/config"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/delivery/handler"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/db/mongodb"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/email"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/infrastructure/messaging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	client, err := mongodb.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.MongoDB)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		log.Fatal("❌ Failed to create indexes:", err)
	}

	userRepo := mongodb.NewUserRepository(db)
	citationRepo := mongodb.NewCitationRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	redisService := infrastructure.NewRedisService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisService.Close()

	rateLimiter := infrastructure.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMaxRequests)
	emailSender := email.NewSenderFromProvider(cfg.EmailProvider, cfg.EmailAPIKey, cfg.EmailSender)

	var publisher *messaging.Publisher
	if cfg.NatsURL != "" {
		publisher, err = messaging.Connect(cfg.NatsURL)
		if err != nil {
			log.Println("⚠️ Failed to connect to NATS, events disabled:", err)
		}
		defer publisher.Close()
	}

	userService := services.NewUserService(
		userRepo,
		jwtService,
		emailSender,
		rateLimiter,
		redisService,
		publisher,
		cfg.VerificationTokenTTL,
		cfg.RequireVerifiedLogin,
	)
	citationService := services.NewCitationService(citationRepo)

	userHandler := handler.NewUserHandler(userService)
	citationHandler := handler.NewCitationHandler(citationService)

	globalLimiter := rate.NewLimiter(rate.Limit(1000), 200)
	router := delivery.NewRouter(userHandler, citationHandler, jwtService, redisService, globalLimiter)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(server.ListenAndServe())
}
