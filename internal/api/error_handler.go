package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kiosk123/user-api/internal/api/handler"
	"github.com/kiosk123/user-api/internal/core/domain"
)

// errorResponse is the single error envelope every failure renders to.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that translates
// domain failures into the envelope:
//   - missing user or post          → 404, message names the ids
//   - validation failure            → 400, message = first violation,
//     details = full violation list
//   - echo's own errors (bind, 404 routes, 406 unroutable) pass through
//   - anything else                 → 500, only the failure's own message;
//     the cause is logged, never sent to the client
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, body := translate(err, log, c)
		_ = c.JSON(code, body)
	}
}

func translate(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	now := time.Now().UTC()
	details := requestContext(c)

	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{
			Timestamp: now,
			Message:   ve.Error(),
			Details:   ve.Description(),
		}
	}

	var userNotFound *domain.UserNotFoundError
	if errors.As(err, &userNotFound) {
		return http.StatusNotFound, errorResponse{Timestamp: now, Message: userNotFound.Error(), Details: details}
	}
	var postNotFound *domain.PostNotFoundError
	if errors.As(err, &postNotFound) {
		return http.StatusNotFound, errorResponse{Timestamp: now, Message: postNotFound.Error(), Details: details}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Timestamp: now, Message: fmt.Sprintf("%v", he.Message), Details: details}
	}

	// Unexpected failure: log the full cause, surface only its message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Timestamp: now, Message: err.Error(), Details: details}
}

// requestContext renders the request context string carried in details.
func requestContext(c echo.Context) string {
	return "uri=" + c.Request().URL.Path
}
