package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/belvip/logistic-application/internal/adapters/in/http/servers"
	"github.com/belvip/logistic-application/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

const (
	errorTypeAPI        = "API Error"
	errorTypeValidation = "Validation Error"
	errorTypeNotFound   = "Resource Not Found"
	errorTypeInternal   = "Internal Server Error"

	// generalMessageKey is used in the messages map when an error is not tied to a field.
	generalMessageKey = "error"
)

// NewErrorHandler returns an echo.HTTPErrorHandler that writes every failure
// as a servers.Error envelope. Details of unexpected errors are logged, not returned.
func NewErrorHandler(logger *slog.Logger, now func() time.Time) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := translateError(err)
		body.Timestamp = now()

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"error", err,
				"method", c.Request().Method,
				"route", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func translateError(err error) (int, servers.Error) {
	var (
		notFound   *errs.EntityNotFoundError
		ruleErr    *errs.DomainRuleViolationError
		requestErr *openapi3filter.RequestError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &notFound):
		return newErrorBody(http.StatusNotFound, errorTypeNotFound, general(notFound.Error()))

	case errors.As(err, &ruleErr):
		return newErrorBody(http.StatusBadRequest, errorTypeAPI, general(ruleErr.Message))

	case isValidationError(err):
		messages := make(map[string]string)
		collectFieldMessages(err, messages)
		return newErrorBody(http.StatusBadRequest, errorTypeValidation, messages)

	case errors.As(err, &requestErr):
		key := generalMessageKey
		if requestErr.Parameter != nil {
			key = requestErr.Parameter.Name
		}
		return newErrorBody(http.StatusBadRequest, errorTypeValidation, map[string]string{key: requestErr.Error()})

	case errors.As(err, &httpErr):
		errorType := http.StatusText(httpErr.Code)
		if httpErr.Code == http.StatusBadRequest {
			errorType = errorTypeValidation
		}
		return newErrorBody(httpErr.Code, errorType, general(fmt.Sprint(httpErr.Message)))

	default:
		return newErrorBody(http.StatusInternalServerError, errorTypeInternal, general(errorTypeInternal))
	}
}

func newErrorBody(status int, errorType string, messages map[string]string) (int, servers.Error) {
	return status, servers.Error{
		Status:   status,
		Error:    errorType,
		Messages: messages,
	}
}

func general(message string) map[string]string {
	return map[string]string{generalMessageKey: message}
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// collectFieldMessages keeps the first message reported for each field.
func collectFieldMessages(err error, messages map[string]string) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectFieldMessages(e, messages)
		}
		return
	}

	key := fieldOf(err)
	if _, exists := messages[key]; !exists {
		messages[key] = err.Error()
	}
}

func fieldOf(err error) string {
	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName
	default:
		return generalMessageKey
	}
}
