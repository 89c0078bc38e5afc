package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/logger"
)

// AppError is the JSON error body returned by every endpoint.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Internal error for logging
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NotFound(message string, err error) *AppError {
	return NewError(http.StatusNotFound, message, err)
}

func BadRequest(message string) *AppError {
	return NewError(http.StatusBadRequest, message, nil)
}

func Unavailable(message string) *AppError {
	return NewError(http.StatusServiceUnavailable, message, nil)
}

func Internal(err error) *AppError {
	return NewError(http.StatusInternalServerError, "Internal Server Error", err)
}

// ErrorHandler renders AppError and echo.HTTPError values as JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
	case errors.As(err, &httpErr):
		appErr = NewError(httpErr.Code, fmt.Sprint(httpErr.Message), httpErr.Internal)
	default:
		appErr = Internal(err)
	}

	if appErr.Code >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(appErr.Code)
	} else {
		err = c.JSON(appErr.Code, appErr)
	}
	if err != nil {
		logger.Error("failed to write error response", "err", err)
	}
}
