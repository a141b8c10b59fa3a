package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"systemfit/leveling-app/internal/api"
	"systemfit/leveling-app/internal/cache"
	"systemfit/leveling-app/internal/config"
	"systemfit/leveling-app/internal/generator"
	"systemfit/leveling-app/internal/repository/mongo"
	"systemfit/leveling-app/internal/service"
	"systemfit/leveling-app/internal/storage"
)

func main() {
	log.Println("Starting Leveling App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureAccountIndexes(ctx, appDB.Collection("accounts"))
		log.Println("Index creation process completed.")
	}()

	// --- Redis Connection ---
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("ERROR: Failed to close Redis client: %v", err)
		}
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Generator Backend ---
	gen := generator.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.TextModel, cfg.Gemini.ChatModel, cfg.Gemini.ImageModel)
	if !gen.Enabled() {
		log.Println("WARN: Gemini API key not configured; running in offline mode.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	accountStore := mongo.NewMongoAccountStore(appDB)
	chatHistory := cache.NewChatHistory(redisClient)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(accountStore, cfg.JWT.Secret, cfg.JWT.Expiration)
	playerService := service.NewPlayerService(accountStore)
	planService := service.NewPlanService(gen)
	chatService := service.NewChatService(gen, chatHistory, fileStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default()

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, playerService, planService, chatService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
