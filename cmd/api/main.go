package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/henok-tadesse/socialnet/internal/handler/http"
	redisclient "github.com/henok-tadesse/socialnet/internal/infrastructure/cache"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/config"
	database "github.com/henok-tadesse/socialnet/internal/infrastructure/database"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/jwt"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/logger"
	passwordservice "github.com/henok-tadesse/socialnet/internal/infrastructure/password_service"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/repository/mongodb"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/store"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/uuidgen"
	"github.com/henok-tadesse/socialnet/internal/infrastructure/validator"
	"github.com/henok-tadesse/socialnet/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	tokenRepo := mongodb.NewTokenRepository(db.Collection("tokens"))
	postRepo := mongodb.NewPostRepository(db)
	reactionRepo := mongodb.NewReactionRepository(db)
	counterRepo := mongodb.NewCounterRepository(db)
	txRunner := mongodb.NewTxRunner(mongoClient.Client)

	ctx := context.Background()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create post indexes: %v", err)
	}
	if err := reactionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create reaction indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator)
	postUsecase := usecase.NewPostUsecase(postRepo, reactionRepo, userRepo, txRunner, uuidGenerator, appLogger)
	reactionUsecase := usecase.NewReactionUsecase(reactionRepo, counterRepo, postRepo, txRunner, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		if rdb != nil {
			feedCache := store.NewFeedCacheStore(rdb, appConfig.GetFeedCacheTTL())
			postUsecase.SetFeedCache(feedCache, appConfig.GetFeedCacheTTL())
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, postUsecase, reactionUsecase)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
