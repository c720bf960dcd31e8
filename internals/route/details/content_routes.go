package details

import (
	blogRoute "colosagu_backend/internals/features/content/blog_posts/route"
	galleryRoute "colosagu_backend/internals/features/content/gallery/route"
	programRoute "colosagu_backend/internals/features/content/programs/route"
	videoRoute "colosagu_backend/internals/features/content/videos/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ContentRoutes(api fiber.Router, db *gorm.DB, requireAdmin fiber.Handler) {
	galleryRoute.GalleryRoutes(api, db, requireAdmin)
	videoRoute.VideoRoutes(api, db, requireAdmin)
	programRoute.ProgramRoutes(api, db, requireAdmin)
	blogRoute.BlogPostRoutes(api, db, requireAdmin)
}
