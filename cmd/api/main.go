package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "coursehub/internal/handler/http"
	redisclient "coursehub/internal/infrastructure/cache"
	"coursehub/internal/infrastructure/config"
	"coursehub/internal/infrastructure/database"
	"coursehub/internal/infrastructure/external_services"
	"coursehub/internal/infrastructure/jwt"
	"coursehub/internal/infrastructure/logger"
	passwordservice "coursehub/internal/infrastructure/password_service"
	randomgenerator "coursehub/internal/infrastructure/random_generator"
	"coursehub/internal/infrastructure/repository/mongodb"
	"coursehub/internal/infrastructure/store"
	"coursehub/internal/infrastructure/uuidgen"
	"coursehub/internal/infrastructure/validator"
	"coursehub/internal/usecase"
)

func requireEnv(name string) string {
	value := os.Getenv(name)
	if value == "" {
		log.Fatalf("%s environment variable not set", name)
	}
	return value
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := requireEnv("MONGODB_URI")
	dbName := requireEnv("MONGODB_DB_NAME")
	jwtSecret := requireEnv("JWT_SECRET")
	stripeSecretKey := requireEnv("STRIPE_SECRET_KEY")
	stripeWebhookSecret := requireEnv("STRIPE_WEBHOOK_SECRET")
	cloudinaryURL := requireEnv("CLOUDINARY_URL")

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	courseRepo := mongodb.NewCourseRepository(db)
	lectureRepo := mongodb.NewLectureRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	tokenRepo := mongodb.NewTokenRepository(db)

	ctx := context.Background()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := purchaseRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create purchase indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(jwtSecret)
	appValidator := validator.NewValidator()
	idGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()
	mailService := external_services.NewEmailService(
		os.Getenv("EMAIL_HOST"),
		os.Getenv("EMAIL_PORT"),
		os.Getenv("EMAIL_USERNAME"),
		os.Getenv("EMAIL_APP_PASSWORD"),
		os.Getenv("EMAIL_FROM"),
	)
	mediaService, err := external_services.NewCloudinaryService(cloudinaryURL)
	if err != nil {
		log.Fatalf("Failed to initialize media service: %v", err)
	}
	paymentGateway := external_services.NewStripeGateway(stripeSecretKey, stripeWebhookSecret, appConfig.GetFrontendBaseURL())

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(
		userRepo, courseRepo, tokenRepo, hasher, jwtManager, mediaService,
		mailService, appLogger, appConfig, appValidator, idGenerator, randomGenerator,
	)
	courseUsecase := usecase.NewCourseUsecase(courseRepo, userRepo, mediaService, appLogger, idGenerator)
	lectureUsecase := usecase.NewLectureUsecase(lectureRepo, courseRepo, mediaService, appLogger, idGenerator)
	purchaseUsecase := usecase.NewPurchaseUsecase(purchaseRepo, courseRepo, userRepo, lectureRepo, paymentGateway, appLogger, idGenerator)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(ctx, redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			courseCache := store.NewCourseCacheStore(rdb)
			courseUsecase.SetCourseCache(courseCache)
			purchaseUsecase.SetCourseCache(courseCache)
		}
	}

	router := gin.Default()
	appRouter := handlerHttp.NewRouter(
		userUsecase, courseUsecase, lectureUsecase, purchaseUsecase,
		mediaService, jwtManager, appConfig,
	)
	appRouter.SetupRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
