// Package response writes the JSON envelope every endpoint answers with.
package response

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(SemanticResponse{Status: status, Message: message, Data: data})
}

// DefaultMessage is the lowercased reason phrase of status. Every 5xx maps to
// MessageInternalServerError except 503.
func DefaultMessage(status int) string {
	switch {
	case status == fiber.StatusOK:
		return MessageOK
	case status == fiber.StatusServiceUnavailable:
		return "service unavailable"
	case status >= 500:
		return MessageInternalServerError
	}
	if text := http.StatusText(status); text != "" && status >= 400 {
		return strings.ToLower(text)
	}
	return MessageError
}
