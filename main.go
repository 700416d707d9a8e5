package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"caretrack-server/internal/config"
	"caretrack-server/internal/digest"
	"caretrack-server/internal/mailer"
	"caretrack-server/internal/models"
	"caretrack-server/internal/routes"
	"caretrack-server/internal/seed"
)

func main() {
	seedOnly := flag.Bool("seed", false, "seed the database with demo data and exit")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load environment variables; a missing .env file is fine
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	// Initialize database connection
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if *seedOnly {
		if err := seed.Run(db); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Msg("seed completed successfully")
		return
	}

	// Start the hourly patient digest job
	smtp := mailer.NewSMTPMailer(cfg.Mailer, log)
	job := digest.NewJob(digest.NewGormStore(db), smtp, log)
	scheduler, err := digest.NewScheduler(job, cfg.DigestSchedule, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid digest schedule")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(serverAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
