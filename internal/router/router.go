package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pawsconnect/backend/internal/geocoding"
	"github.com/pawsconnect/backend/internal/handlers"
	"github.com/pawsconnect/backend/internal/middleware"
	"github.com/pawsconnect/backend/internal/models"
	"github.com/pawsconnect/backend/internal/repositories"
	"github.com/pawsconnect/backend/internal/visibility"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient and geocoder may be nil when unconfigured.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, geocoder geocoding.Geocoder) {
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Pet{},
		&models.PetTransferRequest{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	friendshipRepo := repositories.NewPostgresFriendshipRepository(pgdb)
	petRepo := repositories.NewPostgresPetRepository(pgdb)
	transferRepo := repositories.NewPostgresTransferRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database("pawsconnect"))

	checker := visibility.NewChecker(friendshipRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, geocoder)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public routes: visibility is enforced per post, so public posts
	// are readable without an account ---
	public := e.Group("/api/v1/public")
	public.Use(middleware.OptionalJWTMiddleware())
	postHandler := handlers.NewPostHandler(postRepo, petRepo, checker)
	postHandler.RegisterPublicPostRoutes(public)

	// --- Protected routes: local JWTs always work; with Firebase configured
	// an ID token is accepted directly as well ---
	api := e.Group("/api/v1")
	if firebaseAuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient, userRepo))
		log.Println("JWT + Firebase authentication middleware applied to /api/v1 group.")
	} else {
		api.Use(middleware.JWTAuthMiddleware())
		log.Println("JWT authentication middleware applied to /api/v1 group.")
	}

	userHandler := handlers.NewUserHandler(userRepo, geocoder)
	userHandler.RegisterProfileRoutes(api)
	api.GET("/users/search", userHandler.SearchUsers)

	petHandler := handlers.NewPetHandler(petRepo)
	petHandler.RegisterPetRoutes(api)

	transferHandler := handlers.NewTransferHandler(transferRepo, userRepo, notificationRepo)
	transferHandler.RegisterTransferRoutes(api)

	friendshipHandler := handlers.NewFriendshipHandler(friendshipRepo, userRepo, notificationRepo)
	friendshipHandler.RegisterFriendshipRoutes(api)

	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, friendshipRepo, likeRepo)
	feedHandler.RegisterFeedRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, checker)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, checker)
	likeHandler.RegisterLikeRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}
