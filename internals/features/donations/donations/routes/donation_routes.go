package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	donationController "colosagu_backend/internals/features/donations/donations/controller"
	"colosagu_backend/internals/features/donations/donations/service"
	"colosagu_backend/internals/middlewares"
)

// AllDonationRoutes mendaftarkan endpoint donasi di bawah /api.
// requireAdmin dipasang per-route supaya tidak bocor ke route publik.
func AllDonationRoutes(api fiber.Router, db *gorm.DB, cfg *configs.Config, gw service.Gateway, log *zap.Logger, requireAdmin fiber.Handler) {
	ctl := donationController.NewDonationController(db, cfg, gw, log)

	api.Post("/donate", middlewares.DonateRateLimiter(), ctl.CreateDonation) // Create donation + Snap token
	api.Get("/donations", ctl.ListDonations)
	api.Get("/total-donations", ctl.TotalDonations)

	api.Post("/midtrans-callback", ctl.MidtransCallback) // Midtrans Webhook
	api.Post("/check-transaction", ctl.CheckTransaction)
	api.Get("/donation-status/:order_id", ctl.DonationStatus)
	api.Get("/midtrans-config", ctl.MidtransConfig)

	api.Get("/donations/:order_id/gateway-events", requireAdmin, ctl.ListGatewayEvents)
}
