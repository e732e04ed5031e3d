package middleware

import (
	"errors"

	"careergps/internal/logger"
	"careergps/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorMiddleware renders every error and recovered panic as the response
// envelope. It must be installed before handlers that return AppError.
type ErrorMiddleware struct {
	log logger.Logger
}

func NewErrorMiddleware(log logger.Logger) *ErrorMiddleware {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ErrorMiddleware{log: log}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error("panic recovered", map[string]interface{}{"panic": r, "path": c.Path()})
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := resolve(err)
		if status >= 500 {
			m.log.Error("request failed", map[string]interface{}{"path": c.Path(), "error": err})
		}
		return response.Error(c, status, msg, data)
	}
}

func statusFromError(err error) int {
	status, _, _ := resolve(err)
	return status
}

// resolve maps err to what the client sees. 5xx details never leave the
// server.
func resolve(err error) (status int, msg string, data interface{}) {
	var (
		appErr   *AppError
		fiberErr *fiber.Error
	)
	switch {
	case errors.As(err, &appErr) && appErr.StatusCode > 0:
		status, msg, data = appErr.StatusCode, appErr.Message, appErr.Data
	case errors.As(err, &fiberErr) && fiberErr.Code > 0:
		status, msg = fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	if status >= 500 {
		return status, response.DefaultMessage(status), nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return status, msg, data
}
