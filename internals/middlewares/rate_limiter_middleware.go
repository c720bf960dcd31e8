package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "colosagu_backend/internals/helpers"
)

// WebhookPaths tidak pernah dibatasi: notifikasi gateway datang dari sedikit IP
// sumber, 429 di sini berarti status donasi tertunda sampai gateway retry.
var WebhookPaths = []string{"/api/midtrans-callback"}

func newIPLimiter(max int, window time.Duration, message string, skipPaths ...string) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			path := strings.TrimRight(c.Path(), "/")
			for _, p := range skipPaths {
				if path == p {
					return true
				}
			}
			return false
		},
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint /api
func GlobalRateLimiter() fiber.Handler {
	return newIPLimiter(100, 1*time.Minute, "❌ Terlalu banyak permintaan. Silakan coba lagi nanti.", WebhookPaths...)
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newIPLimiter(5, 1*time.Minute, "❌ Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

// Rate limiter untuk pembuatan donasi (tiap call membuka sesi Snap)
func DonateRateLimiter() fiber.Handler {
	return newIPLimiter(10, 1*time.Minute, "❌ Terlalu banyak permintaan donasi. Tunggu sebentar ya.")
}
