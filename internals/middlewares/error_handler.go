package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "colosagu_backend/internals/helpers"
)

// ErrorHandler merender error yang lolos dari handler dalam bentuk standar.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		} else {
			log.Error("unhandled error", zap.String("path", c.OriginalURL()), zap.Error(err))
		}
		return helper.JsonError(c, code, msg)
	}
}
