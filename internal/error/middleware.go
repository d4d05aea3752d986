package middleware

import (
	"errors"

	"github.com/Behyna/sms-services/dispatcher/internal/constants"
	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler translates errors returned by handlers into the JSON error
// envelope. Service errors map through the code table; fiber routing errors
// keep their status; anything else is an opaque 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			errorCode := serviceErr.Code

			status := constants.GetHTTPStatus(errorCode)
			if status == fiber.StatusInternalServerError && errorCode != constants.ErrCodeInternalError {
				errorCode = constants.ErrCodeInternalError
			}

			return c.Status(status).JSON(fiber.Map{
				"code":    errorCode,
				"message": constants.GetErrorMessage(errorCode),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    constants.ErrCodeInternalError,
				"message": fiberErr.Message,
			})
		}

		logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Path()))

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    constants.ErrCodeInternalError,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}
