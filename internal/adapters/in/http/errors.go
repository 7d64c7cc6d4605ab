package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/progress"
	"ordertrack/internal/generated/servers"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const partialFailureMessage = "order created, progress initialization failed"

// ErrorHandler renders every error as servers.Error. Use case errors are
// mapped by kind; anything unrecognised is logged and hidden behind a 500.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := toErrorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func toErrorBody(err error) servers.Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return servers.Error{Code: httpErr.Code, Message: msg}
	}

	var partial *errs.PartialFailureError
	if errors.As(err, &partial) {
		body := servers.Error{Code: http.StatusInternalServerError, Message: partialFailureMessage}
		if id, ok := partial.ID.(kernel.UUID); ok {
			orderID := id.Bytes()
			body.OrderId = &orderID
		}
		return body
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return servers.Error{Code: http.StatusUnauthorized, Message: "authentication required"}
	case errors.Is(err, errs.ErrTransport):
		return servers.Error{Code: http.StatusServiceUnavailable, Message: "store is unavailable, try again later"}
	case errs.IsValidation(err):
		return servers.Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return servers.Error{Code: http.StatusNotFound, Message: notFoundMessage(err)}
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return servers.Error{Code: http.StatusConflict, Message: alreadyExistsMessage(err)}
	case errors.Is(err, progress.ErrStatusConflict):
		return servers.Error{Code: http.StatusConflict, Message: progress.ErrStatusConflict.Error()}
	case errors.Is(err, progress.ErrIllegalTransition):
		return servers.Error{Code: http.StatusConflict, Message: err.Error()}
	default:
		return servers.Error{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	}
}

// notFoundMessage and alreadyExistsMessage name the param only; causes may
// carry driver and constraint text.
func notFoundMessage(err error) string {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) && notFound.ParamName != "" {
		return notFound.ParamName + " not found"
	}
	return errs.ErrObjectNotFound.Error()
}

func alreadyExistsMessage(err error) string {
	var exists *errs.ObjectAlreadyExistsError
	if errors.As(err, &exists) && exists.ParamName != "" {
		return exists.ParamName + " already exists"
	}
	return errs.ErrObjectAlreadyExists.Error()
}
