package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"gramola/internal/auth"
	"gramola/internal/errors"
	"gramola/internal/service"
)

// UserHandler handles registration, login and the token lifecycle endpoints.
type UserHandler struct {
	userService service.UserService
	jwtService  *auth.JWTService
	frontURL    string
}

// NewUserHandler creates a new user handler. frontURL is the SPA base URL
// used for the confirmation redirect and the reset-password link.
func NewUserHandler(userService service.UserService, jwtService *auth.JWTService, frontURL string) *UserHandler {
	return &UserHandler{userService: userService, jwtService: jwtService, frontURL: frontURL}
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Bar          string `json:"bar"`
	Email        string `json:"email"`
	Pwd1         string `json:"pwd1"`
	Pwd2         string `json:"pwd2"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Address      string `json:"address"`
	Signature    string `json:"signature"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email string `json:"email" validate:"required"`
	Pwd   string `json:"pwd" validate:"required"`
}

// LoginResponse carries the data the SPA needs after a successful login.
type LoginResponse struct {
	Email       string   `json:"email"`
	ClientID    string   `json:"clientId"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Signature   string   `json:"signature"`
	AccessToken string   `json:"accessToken"`
}

// StatusResponse is the generic {status, message} answer.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ResetTokenResponse answers a password-reset request with the link the
// email carries, so the SPA can show it in dev setups without a mailbox.
type ResetTokenResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ResetURL string `json:"resetUrl"`
}

// validateRegister enforces the form-level rules. Violations answer 406 so
// the SPA shows the message inline, matching the login/confirm error shape.
func validateRegister(req *RegisterRequest) string {
	switch {
	case req.Bar == "":
		return "bar name is required"
	case req.Email == "":
		return "email is required"
	case !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, "."):
		return "email address is not valid"
	case req.Pwd1 == "":
		return "password is required"
	case len(req.Pwd1) < 8:
		return "password must be at least 8 characters long"
	case req.Pwd1 != req.Pwd2:
		return "passwords do not match"
	case req.ClientID == "" || req.ClientSecret == "":
		return "spotify client id and secret are required"
	case req.Address == "":
		return "address is required"
	case req.Signature == "":
		return "signature is required"
	}
	return ""
}

// Register godoc
// @Summary Register a new bar owner
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 204
// @Failure 406 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if msg := validateRegister(&req); msg != "" {
		return echo.NewHTTPError(http.StatusNotAcceptable, errors.ErrorResponse{
			Error: msg,
			Code:  "VALIDATION_ERROR",
		})
	}

	err := h.userService.Register(
		c.Request().Context(),
		req.Bar, req.Email, req.Pwd1,
		req.ClientID, req.ClientSecret,
		req.Address, req.Signature,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Login godoc
// @Summary Log a bar owner in
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 406 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, err := h.userService.Login(c.Request().Context(), req.Email, req.Pwd)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	accessToken, err := h.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Email:       user.Email,
		ClientID:    user.ClientID,
		Lat:         user.Lat,
		Lng:         user.Lng,
		Signature:   user.Signature,
		AccessToken: accessToken,
	})
}

// ConfirmTokenRedirect godoc
// @Summary Confirm an email from the mailed link and jump to the payment page
// @Tags users
// @Param email path string true "Account email"
// @Param token query string true "Confirmation token id"
// @Success 302
// @Failure 404 {object} errors.ErrorResponse
// @Failure 406 {object} errors.ErrorResponse
// @Failure 410 {object} errors.ErrorResponse
// @Router /users/confirmToken/{email} [get]
func (h *UserHandler) ConfirmTokenRedirect(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		email = c.Param("email")
	}
	tokenID := c.QueryParam("token")

	if err := h.userService.ConfirmToken(c.Request().Context(), email, tokenID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	target := h.frontURL + "/payments?token=" + url.QueryEscape(tokenID)
	return c.Redirect(http.StatusFound, target)
}

// Confirm godoc
// @Summary Confirm an email, answering JSON instead of redirecting
// @Tags users
// @Produce json
// @Param email query string true "Account email"
// @Param token query string true "Confirmation token id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 406 {object} errors.ErrorResponse
// @Failure 410 {object} errors.ErrorResponse
// @Router /users/confirm [get]
func (h *UserHandler) Confirm(c echo.Context) error {
	email := c.QueryParam("email")
	tokenID := c.QueryParam("token")

	if err := h.userService.ConfirmToken(c.Request().Context(), email, tokenID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "email confirmed",
	})
}

// PasswordTokenRequest represents a password-reset request.
type PasswordTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordToken godoc
// @Summary Create a password-reset token and email the reset link
// @Tags users
// @Accept json
// @Produce json
// @Param request body PasswordTokenRequest true "Account email"
// @Success 200 {object} ResetTokenResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/password/token [post]
func (h *UserHandler) PasswordToken(c echo.Context) error {
	var req PasswordTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	tokenID, err := h.userService.CreatePasswordResetToken(c.Request().Context(), req.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resetURL := h.frontURL + "/reset-password?email=" + url.QueryEscape(req.Email) +
		"&token=" + url.QueryEscape(tokenID)
	h.userService.SendResetPasswordEmail(req.Email, resetURL)

	return c.JSON(http.StatusOK, ResetTokenResponse{
		Status:   "ok",
		Message:  "reset link sent",
		ResetURL: resetURL,
	})
}

// PasswordResetRequest represents a password-change request.
type PasswordResetRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Token  string `json:"token" validate:"required"`
	NewPwd string `json:"newPwd" validate:"required,min=8"`
}

// PasswordReset godoc
// @Summary Set a new password using a reset token
// @Tags users
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset data"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 410 {object} errors.ErrorResponse
// @Router /users/password/reset [post]
func (h *UserHandler) PasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.userService.ResetPassword(c.Request().Context(), req.Email, req.Token, req.NewPwd); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Message: "password updated",
	})
}

// Delete godoc
// @Summary Delete an account and its confirmation token
// @Tags users
// @Param email query string true "Account email"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/delete [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "email is required",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.userService.Delete(c.Request().Context(), email); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
