package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/blog_posts/controller"
)

func BlogPostRoutes(api fiber.Router, db *gorm.DB, requireAdmin fiber.Handler) {
	ctrl := controller.NewBlogPostController(db)

	posts := api.Group("/blog-posts")
	posts.Get("/", ctrl.GetAll)                      // 📄 Semua artikel
	posts.Get("/:key", ctrl.GetOne)                  // 🔍 Detail (id atau slug)
	posts.Post("/", requireAdmin, ctrl.Create)       // ➕ Buat artikel
	posts.Put("/:key", requireAdmin, ctrl.Update)    // 🔄 Perbarui artikel
	posts.Delete("/:key", requireAdmin, ctrl.Delete) // 🗑️ Hapus artikel
}
