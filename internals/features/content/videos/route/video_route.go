package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/videos/controller"
)

func VideoRoutes(api fiber.Router, db *gorm.DB, requireAdmin fiber.Handler) {
	ctrl := controller.NewVideoController(db)

	videos := api.Group("/videos")
	videos.Get("/", ctrl.GetAll)
	videos.Post("/", requireAdmin, ctrl.Create)
	videos.Put("/:id", requireAdmin, ctrl.Update)
	videos.Delete("/:id", requireAdmin, ctrl.Delete)
}
