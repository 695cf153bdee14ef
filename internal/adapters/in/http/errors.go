package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/core/domain/model/item"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an application error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, errs.ErrIllegalState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and not exposed.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, Error{Code: status, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
