package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	authRoute "colosagu_backend/internals/features/users/auth/route"
	userRoute "colosagu_backend/internals/features/users/user/routes"
)

// UserRoutes: login/logout/me + CRUD admin user.
func UserRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, log *zap.Logger, requireAdmin fiber.Handler) {
	authRoute.AuthRoutes(api, db, cfg, log, requireAdmin)
	userRoute.UserRoutes(api, db, log, requireAdmin)
}
