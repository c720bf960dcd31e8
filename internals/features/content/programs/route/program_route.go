package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/programs/controller"
)

func ProgramRoutes(api fiber.Router, db *gorm.DB, requireAdmin fiber.Handler) {
	ctrl := controller.NewProgramController(db)

	programs := api.Group("/programs")
	programs.Get("/", ctrl.GetAll)                     // 📄 Semua program
	programs.Post("/", requireAdmin, ctrl.Create)      // ➕ Tambah program
	programs.Put("/:id", requireAdmin, ctrl.Update)    // 🔄 Perbarui program
	programs.Delete("/:id", requireAdmin, ctrl.Delete) // 🗑️ Hapus program
}
