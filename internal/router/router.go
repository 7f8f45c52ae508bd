package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gramola/internal/auth"
	"gramola/internal/config"
	"gramola/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	paymentHandler *handler.PaymentHandler,
	musicHandler *handler.MusicHandler,
	spotifyHandler *handler.SpotifyHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// The SPA runs on its own origin in development.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			cfg.FrontURL,
			"http://localhost:4200",
			"http://127.0.0.1:4200",
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// User routes
	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/confirmToken/:email", userHandler.ConfirmTokenRedirect)
	users.GET("/confirm", userHandler.Confirm)
	users.POST("/password/token", userHandler.PasswordToken)
	users.POST("/password/reset", userHandler.PasswordReset)
	users.DELETE("/delete", userHandler.Delete)

	// Payment routes
	payments := e.Group("/payments")
	payments.GET("/plans", paymentHandler.Plans)
	payments.POST("/prepay", paymentHandler.Prepay)
	payments.POST("/confirm", paymentHandler.Confirm)
	payments.GET("/diag", paymentHandler.Diag)

	// Music routes; history requires the owner's login token.
	music := e.Group("/music")
	music.POST("/add", musicHandler.Add)
	music.GET("/history", musicHandler.History, echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Spotify bridge routes; passthroughs carry the Spotify bearer token,
	// not the local JWT, so they stay outside the JWT middleware.
	spoti := e.Group("/spoti")
	spoti.GET("/getAuthorizationToken", spotifyHandler.GetAuthorizationToken)
	spoti.GET("/devices", spotifyHandler.Devices)
	spoti.GET("/playlists", spotifyHandler.Playlists)
	spoti.GET("/search", spotifyHandler.Search)
	spoti.POST("/queue", spotifyHandler.Queue)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
