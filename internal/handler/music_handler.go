package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"gramola/internal/auth"
	"gramola/internal/errors"
	"gramola/internal/service"
)

// MusicHandler handles track-history endpoints.
type MusicHandler struct {
	musicService service.MusicService
}

// NewMusicHandler creates a new music handler.
func NewMusicHandler(musicService service.MusicService) *MusicHandler {
	return &MusicHandler{musicService: musicService}
}

// AddTrackRequest represents a queued-song record. Only the Spotify id is
// mandatory; the display fields fall back to placeholders.
type AddTrackRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Email  string `json:"email"`
}

// Add godoc
// @Summary Record a paid-for track in the history
// @Tags music
// @Accept json
// @Produce json
// @Param request body AddTrackRequest true "Track data"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /music/add [post]
func (h *MusicHandler) Add(c echo.Context) error {
	var req AddTrackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if req.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "track id is required",
			Code:  "VALIDATION_ERROR",
		})
	}
	if req.Title == "" {
		req.Title = "unknown"
	}
	if req.Artist == "" {
		req.Artist = "unknown"
	}
	if req.Email == "" {
		req.Email = "anonymous"
	}

	err := h.musicService.SaveTrack(c.Request().Context(), req.ID, req.Title, req.Artist, req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "track recorded",
	})
}

// History godoc
// @Summary List the authenticated owner's track history
// @Tags music
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Track
// @Failure 401 {object} errors.ErrorResponse
// @Router /music/history [get]
func (h *MusicHandler) History(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.Email == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "UNAUTHORIZED",
		})
	}

	tracks, err := h.musicService.History(c.Request().Context(), claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tracks)
}
