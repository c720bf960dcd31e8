package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	authController "colosagu_backend/internals/features/users/auth/controller"
	"colosagu_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger, requireAdmin fiber.Handler) {
	ctl := authController.NewAuthController(db, cfg, log)

	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/logout", ctl.Logout)
	api.Get("/me", requireAdmin, ctl.Me)
}
