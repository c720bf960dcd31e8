package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	eventController "colosagu_backend/internals/features/donations/events/controller"
)

func DonationEventRoutes(api fiber.Router, db *gorm.DB, loc *time.Location, log *zap.Logger, requireAdmin fiber.Handler) {
	ctl := eventController.NewDonationEventController(db, loc, log)

	api.Get("/active-event", ctl.GetActive)
	api.Get("/events", ctl.List)

	api.Post("/events", requireAdmin, ctl.Create)
	api.Put("/events/:id", requireAdmin, ctl.Update)
	api.Delete("/events/:id", requireAdmin, ctl.Delete)
}
