package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	donationRoute "colosagu_backend/internals/features/donations/donations/routes"
	"colosagu_backend/internals/features/donations/donations/service"
	eventRoute "colosagu_backend/internals/features/donations/events/routes"
)

// DonationRoutes: event donasi + transaksi Midtrans.
func DonationRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, gw service.Gateway, log *zap.Logger, requireAdmin fiber.Handler) {
	eventRoute.DonationEventRoutes(api, db, cfg.Location, log, requireAdmin)
	donationRoute.AllDonationRoutes(api, db, cfg, gw, log, requireAdmin)
}
