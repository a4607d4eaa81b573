package http

import (
	"errors"
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a core error to its HTTP status and writes the response.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Code:    statusFor(err),
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrPatchIsEmpty),
		errors.Is(err, commands.ErrSignatureIsRequired),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
