package http

import (
	"errors"
	"net/http"

	"postal/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wires go-playground/validator as echo's request
// validator.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates the request validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks a bound request payload against its struct tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// writeError maps a use-case error onto the REST error taxonomy:
// missing references are 404, rejected values are 400, everything else is a
// 500 with the detail kept out of the payload.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorCode(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// writeDispatchError is the send-endpoint variant of writeError: once the
// parcel is resolved, an invalid-value failure can only mean the dispatch
// was attempted from a terminal status, which is a conflict rather than a
// malformed request.
func writeDispatchError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrValueIsInvalid) {
		return writeErrorCode(ctx, http.StatusConflict, err)
	}
	return writeError(ctx, err)
}

func writeErrorCode(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
