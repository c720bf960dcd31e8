package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/gallery/controller"
)

func GalleryRoutes(api fiber.Router, db *gorm.DB, requireAdmin fiber.Handler) {
	ctrl := controller.NewGalleryController(db)

	gallery := api.Group("/gallery")
	gallery.Get("/", ctrl.GetAll)                     // 📄 Lihat semua foto
	gallery.Post("/", requireAdmin, ctrl.Create)      // ➕ Tambah foto
	gallery.Put("/:id", requireAdmin, ctrl.Update)    // 🔄 Perbarui foto
	gallery.Delete("/:id", requireAdmin, ctrl.Delete) // 🗑️ Hapus foto
}
