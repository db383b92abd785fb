package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "bloodbank-backend/internal/api/http"
	"bloodbank-backend/internal/config"
	"bloodbank-backend/internal/logger"
	"bloodbank-backend/internal/metrics"
	"bloodbank-backend/internal/repository/postgres"
	"bloodbank-backend/internal/security"
	"bloodbank-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Blood Bank Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Metrics
	m := metrics.New()

	// Initialize Services
	authSvc := service.NewAuthService(store.StaffRepository, tokenManager)
	registrySvc := service.NewRegistryService(store.DonorRepository, store.DonationRepository, m)
	donationSvc := service.NewDonationService(registrySvc, store.DonorRepository, store.DonationRepository, m)
	adminSvc := service.NewAdminService(store.StaffRepository, store.DonorRepository, store.DonationRepository)
	importSvc := service.NewImportService(registrySvc, store.DonationRepository, m)

	// Ensure at least one admin account exists; a fresh deployment has no
	// account that could verify staff otherwise.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := authSvc.BootstrapAdmin(ctx, cfg.AdminBootstrap.Username, cfg.AdminBootstrap.Password); err != nil {
		logger.Error("Failed to bootstrap admin account", "error", err)
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Auth:        authSvc,
		Registry:    registrySvc,
		Donations:   donationSvc,
		Admin:       adminSvc,
		Importer:    importSvc,
		Tokens:      tokenManager,
		MaxImportMB: cfg.Import.MaxFileSizeMB,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
