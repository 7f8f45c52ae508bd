package main

import (
	"context"
	"log"
	"net/http"

	_ "gramola/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"gramola/internal/auth"
	"gramola/internal/cache"
	"gramola/internal/config"
	"gramola/internal/db"
	"gramola/internal/geocode"
	"gramola/internal/handler"
	"gramola/internal/mail"
	"gramola/internal/model"
	"gramola/internal/repository"
	"gramola/internal/router"
	"gramola/internal/service"
	"gramola/internal/spotify"
)

// @title La Gramola API
// @version 1.0
// @description Bar jukebox backend: owner accounts, paid song queueing, Spotify bridge.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Token{},
		&model.User{},
		&model.SubscriptionPlan{},
		&model.Track{},
		&model.StripeTransaction{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	trackRepo := repository.NewTrackRepository(gormDB)
	txRepo := repository.NewTransactionRepository(gormDB)

	// Initialize collaborators
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SenderEmail)
	geocoder := geocode.NewClient()
	spotifyClient := spotify.NewClient(cfg.SpotifyRedirectURI)
	stripeGateway := service.NewStripeGateway(cfg.StripeSecret)

	// Initialize services
	userService := service.NewUserService(userRepo, tokenRepo, geocoder, mailer, cfg.BackURL)
	paymentService := service.NewPaymentService(planRepo, txRepo, userRepo, cacheClient, stripeGateway)
	musicService := service.NewMusicService(trackRepo, planRepo)
	spotifyService := service.NewSpotifyService(userRepo, spotifyClient)

	// Plans are the single source of prices; seed them before serving.
	if err := paymentService.SeedDefaultPlans(context.Background()); err != nil {
		log.Fatalf("seed plans: %v", err)
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, jwtService, cfg.FrontURL)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	musicHandler := handler.NewMusicHandler(musicService)
	spotifyHandler := handler.NewSpotifyHandler(spotifyService)

	// Register routes
	router.Register(
		e,
		cfg,
		userHandler,
		paymentHandler,
		musicHandler,
		spotifyHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
