package http

import (
	"errors"
	"net/http"

	"travelorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorBody is the JSON envelope returned for every failed request.
type errorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeError maps a core error to its HTTP status and writes the envelope.
// Unrecognized errors become 500 with a generic message so internals never
// leak to the client.
func writeError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: "validation failed",
			Fields:  validationErr.Fields,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}
