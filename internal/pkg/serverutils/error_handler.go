package serverutils

import (
	"errors"

	"annotation-notes-be/internal/pkg/apperr"
	"annotation-notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into BaseResponse
// bodies. Domain errors keep their reason; anything unexpected becomes a
// logged 500 with a generic message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := classify(err)
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func classify(err error) (int, string) {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound, apperr.Reason(err)
	case errors.Is(err, apperr.ErrUnauthorized):
		return fiber.StatusUnauthorized, apperr.Reason(err)
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
