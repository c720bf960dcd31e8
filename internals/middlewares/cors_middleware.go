package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS dari daftar origin konfigurasi
func CorsMiddleware(origins []string) fiber.Handler {
	allow := strings.Join(origins, ", ")
	return cors.New(cors.Config{
		AllowOrigins: allow,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		// fiber menolak wildcard + credentials
		AllowCredentials: !strings.Contains(allow, "*"),
	})
}
