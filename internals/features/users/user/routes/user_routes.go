package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userController "colosagu_backend/internals/features/users/user/controller"
)

// UserRoutes seluruhnya khusus admin (list pun tidak publik).
func UserRoutes(api fiber.Router, db *gorm.DB, log *zap.Logger, requireAdmin fiber.Handler) {
	ctl := userController.NewUserController(db, log)

	users := api.Group("/users")
	users.Get("/", requireAdmin, ctl.GetUsers)
	users.Post("/", requireAdmin, ctl.CreateUser)
	users.Put("/:id", requireAdmin, ctl.UpdateUser)
	users.Delete("/:id", requireAdmin, ctl.DeleteUser)
}
