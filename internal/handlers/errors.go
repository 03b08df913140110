package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/validation"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders errors returned by handlers, errors unknown to the application are logged and hidden from caller
func ErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := errorResponse(err)
		if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
			logger.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
			}).Error("failed to process request")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}

		if err != nil {
			logger.WithError(err).Error("failed to send error response")
		}
	}
}

func errorResponse(err error) (int, any) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return http.StatusBadRequest, pldErr
	}

	var trErr *apperrors.InvalidStatusTransitionErr
	if errors.As(err, &trErr) {
		return http.StatusUnprocessableEntity, trErr
	}

	var refErr *apperrors.ReferenceExhaustedErr
	if errors.As(err, &refErr) {
		return http.StatusServiceUnavailable, &message{Message: refErr.Error()}
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, &message{Message: notFoundErr.Error()}
	}

	var bsnErr *apperrors.BusinessErr
	if errors.As(err, &bsnErr) {
		return http.StatusBadRequest, bsnErr
	}

	var modErr *apperrors.ConcurrentModificationErr
	if errors.As(err, &modErr) {
		return http.StatusConflict, &message{Message: modErr.Error()}
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusInternalServerError {
			return echoErr.Code, &message{Message: internalErrorMessage}
		}

		if m, ok := echoErr.Message.(string); ok {
			return echoErr.Code, &message{Message: m}
		}
		return echoErr.Code, echoErr
	}

	return http.StatusInternalServerError, &message{Message: internalErrorMessage}
}
