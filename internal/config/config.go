package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// Stripe secret key, handed to the payment gateway constructor.
	StripeSecret string

	// SMTP settings for transactional mail.
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SenderEmail string

	// FrontURL is the SPA base URL used when building links embedded in
	// emails and in the confirmation redirect.
	FrontURL string
	// BackURL is this server's public base URL; confirmation links sent by
	// email point back at it.
	BackURL string

	// SpotifyRedirectURI must match the redirect URI registered in the
	// Spotify developer dashboard.
	SpotifyRedirectURI string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		MySQLDSN:           getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/gramola?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		StripeSecret:       os.Getenv("STRIPE_SECRET"),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASSWORD"),
		SenderEmail:        getEnv("SENDER_EMAIL", os.Getenv("SMTP_USER")),
		FrontURL:           getEnv("FRONT_URL", "http://localhost:4200"),
		BackURL:            getEnv("BACK_URL", "http://localhost:8080"),
		SpotifyRedirectURI: getEnv("SPOTIFY_REDIRECT_URI", "http://localhost:4200/callback"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
