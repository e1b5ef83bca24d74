package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/pawsconnect/backend/internal/geocoding"
	"github.com/pawsconnect/backend/internal/router"
	"github.com/pawsconnect/backend/pkg/config"
	"github.com/pawsconnect/backend/pkg/firebase"
	"github.com/pawsconnect/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Firebase login is optional; without credentials only local JWT auth is available.
	var firebaseAuthClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		firebaseAuthClient = firebaseApp.AuthClient
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, Firebase login disabled.")
	}

	// Geocoding is best effort; without an API key accounts simply keep
	// null coordinates and drop out of distance filtering.
	var geocoder geocoding.Geocoder
	if cfg.GoogleMapsAPIKey != "" {
		g, err := geocoding.NewGoogleGeocoder(cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize geocoder: %v", err)
		}
		geocoder = g
	} else {
		log.Println("GOOGLE_MAPS_API_KEY not set, geocoding disabled.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, db.Mongo, firebaseAuthClient, geocoder)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
