package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gramola/internal/errors"
	"gramola/internal/service"
)

// SpotifyHandler handles the OAuth code exchange and the Web API
// passthroughs. Passthroughs relay the provider JSON unmodified.
type SpotifyHandler struct {
	spotifyService service.SpotifyService
}

// NewSpotifyHandler creates a new Spotify handler.
func NewSpotifyHandler(spotifyService service.SpotifyService) *SpotifyHandler {
	return &SpotifyHandler{spotifyService: spotifyService}
}

// GetAuthorizationToken godoc
// @Summary Exchange a Spotify OAuth code for an access token
// @Tags spotify
// @Produce json
// @Param code query string true "OAuth authorization code"
// @Param clientId query string true "Spotify client id"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /spoti/getAuthorizationToken [get]
func (h *SpotifyHandler) GetAuthorizationToken(c echo.Context) error {
	code := c.QueryParam("code")
	clientID := c.QueryParam("clientId")
	if code == "" || clientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "code and clientId are required",
			Code:  "INVALID_REQUEST",
		})
	}

	raw, err := h.spotifyService.GetAuthorizationToken(c.Request().Context(), code, clientID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// Devices godoc
// @Summary List the account's playback devices
// @Tags spotify
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} errors.ErrorResponse
// @Router /spoti/devices [get]
func (h *SpotifyHandler) Devices(c echo.Context) error {
	accessToken, err := bearerToken(c)
	if err != nil {
		return err
	}
	raw, err := h.spotifyService.Devices(c.Request().Context(), accessToken)
	if err != nil {
		return gatewayError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// Playlists godoc
// @Summary List the account's playlists
// @Tags spotify
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} errors.ErrorResponse
// @Router /spoti/playlists [get]
func (h *SpotifyHandler) Playlists(c echo.Context) error {
	accessToken, err := bearerToken(c)
	if err != nil {
		return err
	}
	raw, err := h.spotifyService.Playlists(c.Request().Context(), accessToken)
	if err != nil {
		return gatewayError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// Search godoc
// @Summary Search the track catalog
// @Tags spotify
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search terms"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} errors.ErrorResponse
// @Router /spoti/search [get]
func (h *SpotifyHandler) Search(c echo.Context) error {
	accessToken, err := bearerToken(c)
	if err != nil {
		return err
	}
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "q is required",
			Code:  "INVALID_REQUEST",
		})
	}
	raw, err := h.spotifyService.SearchTracks(c.Request().Context(), accessToken, query)
	if err != nil {
		return gatewayError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// Queue godoc
// @Summary Append a track to the active device's playback queue
// @Tags spotify
// @Produce json
// @Security BearerAuth
// @Param uri query string true "Spotify track URI"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} errors.ErrorResponse
// @Router /spoti/queue [post]
func (h *SpotifyHandler) Queue(c echo.Context) error {
	accessToken, err := bearerToken(c)
	if err != nil {
		return err
	}
	uri := c.QueryParam("uri")
	if uri == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "uri is required",
			Code:  "INVALID_REQUEST",
		})
	}
	raw, err := h.spotifyService.QueueTrack(c.Request().Context(), accessToken, uri)
	if err != nil {
		return gatewayError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// bearerToken pulls the Spotify access token the SPA forwards in the
// Authorization header.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if !strings.HasPrefix(header, "Bearer ") || token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "bearer token is required",
			Code:  "UNAUTHORIZED",
		})
	}
	return token, nil
}

func gatewayError(err error) error {
	httpErr := errors.MapErrorToHTTP(errors.ErrSpotifyGateway)
	httpErr.Message = httpErr.Message + ": " + err.Error()
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
