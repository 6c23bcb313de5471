package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/api"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/config"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/database"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/repository"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/secrets"
	"github.com/kjustin2/Financial-Adviser-Local-App-sub000/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Load or create the encryption key for profile data at rest
	keychain, err := secrets.LoadKeychain(cfg.Secrets.KeyPath)
	if err != nil {
		log.Fatalf("Failed to load encryption key: %v", err)
	}

	// Create repositories
	profileRepo := repository.NewProfileRepository(db, keychain)
	holdingRepo := repository.NewHoldingRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	profileService := service.NewProfileService(profileRepo)
	holdingService := service.NewHoldingService(holdingRepo)
	goalService := service.NewGoalService(goalRepo)
	advisorService := service.NewAdvisorService(
		profileRepo,
		holdingRepo,
		goalRepo,
		recommendationRepo,
	)

	// Schedule the nightly recommendation refresh so stored advice tracks
	// profile and holding edits made through the day. An empty schedule
	// disables the job.
	if cfg.Jobs.RecommendationRefresh != "" {
		scheduler := cron.New()
		_, err = scheduler.AddFunc(cfg.Jobs.RecommendationRefresh, func() {
			if _, err := advisorService.RefreshRecommendations(); err != nil {
				log.Printf("Scheduled recommendation refresh failed: %v", err)
				return
			}
			log.Println("Scheduled recommendation refresh completed")
		})
		if err != nil {
			log.Fatalf("Failed to schedule recommendation refresh: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, profileService, holdingService, goalService, advisorService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
