package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("unknown user or wrong password")
	// ErrEmailNotConfirmed is returned when logging into an unconfirmed account.
	ErrEmailNotConfirmed = errors.New("user has not confirmed their email")
	// ErrNoCreationToken is returned when confirming a user without a token.
	ErrNoCreationToken = errors.New("user has no creation token")
	// ErrTokenMismatch is returned when the supplied token id does not match.
	ErrTokenMismatch = errors.New("token does not match")
	// ErrTokenExpired is returned for tokens older than the validity window.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenUsed is returned for tokens that were already consumed.
	ErrTokenUsed = errors.New("token already used")
	// ErrTokenNotFound is returned when a reset token id is unknown.
	ErrTokenNotFound = errors.New("token not found")
	// ErrPlanNotFound is returned when a subscription plan id is unknown.
	ErrPlanNotFound = errors.New("subscription plan not found")
	// ErrSongPlanMissing is returned when the SONG plan row is absent.
	// That is a deployment misconfiguration, not a client error.
	ErrSongPlanMissing = errors.New("song price is not defined in the database")
	// ErrTransactionNotFound is returned when a transaction id was never
	// initiated from this server.
	ErrTransactionNotFound = errors.New("transaction not registered on this server")
	// ErrMissingPaymentIntent is returned when the stored payload carries no
	// provider intent id.
	ErrMissingPaymentIntent = errors.New("payment intent id missing from transaction")
	// ErrPaymentIncomplete is returned when the provider reports a status
	// other than succeeded or requires_capture.
	ErrPaymentIncomplete = errors.New("payment is not completed")
	// ErrUnresolvedIdentity is returned when no email can be resolved for the payer.
	ErrUnresolvedIdentity = errors.New("could not resolve the paying user")
	// ErrSpotifyClientUnknown is returned when no user owns the client id.
	ErrSpotifyClientUnknown = errors.New("spotify client id is not registered")
	// ErrSpotifyGateway is returned when the token exchange with Spotify fails.
	ErrSpotifyGateway = errors.New("could not communicate with spotify")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors keep
// their full message so callers see the provider status echoed back.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailNotConfirmed):
		return NewHTTPError(http.StatusNotAcceptable, err.Error(), "EMAIL_NOT_CONFIRMED")
	case errors.Is(err, ErrNoCreationToken):
		return NewHTTPError(http.StatusNotAcceptable, err.Error(), "NO_CREATION_TOKEN")
	case errors.Is(err, ErrTokenMismatch):
		return NewHTTPError(http.StatusNotAcceptable, err.Error(), "TOKEN_MISMATCH")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusGone, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrTokenUsed):
		return NewHTTPError(http.StatusGone, err.Error(), "TOKEN_USED")
	case errors.Is(err, ErrTokenNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOKEN_NOT_FOUND")
	case errors.Is(err, ErrPlanNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLAN_NOT_FOUND")
	case errors.Is(err, ErrSongPlanMissing):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "SONG_PLAN_MISSING")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case errors.Is(err, ErrMissingPaymentIntent):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_PAYMENT_INTENT")
	case errors.Is(err, ErrPaymentIncomplete):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PAYMENT_INCOMPLETE")
	case errors.Is(err, ErrUnresolvedIdentity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNRESOLVED_IDENTITY")
	case errors.Is(err, ErrSpotifyClientUnknown):
		return NewHTTPError(http.StatusForbidden, err.Error(), "SPOTIFY_CLIENT_UNKNOWN")
	case errors.Is(err, ErrSpotifyGateway):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "SPOTIFY_GATEWAY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error: "+err.Error(), "INTERNAL_ERROR")
	}
}
