package routes

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	"colosagu_backend/internals/features/donations/donations/service"
	"colosagu_backend/internals/middlewares"
	authMiddleware "colosagu_backend/internals/middlewares/auth"
	routeDetails "colosagu_backend/internals/route/details"
)

var startTime = time.Now()

// Deps kebutuhan untuk merakit aplikasi HTTP.
type Deps struct {
	DB      *gorm.DB
	Config  *configs.Config
	Log     *zap.Logger
	Gateway service.Gateway
}

// NewApp membuat fiber.App lengkap: middleware global, semua route, static.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            middlewares.ErrorHandler(d.Log),
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          d.Config.TrustedProxies, // header dari peer lain diabaikan
		BodyLimit:               4 * 1024 * 1024,
	})

	middlewares.SetupMiddlewares(app, d.Config, d.Log)
	SetupRoutes(app, d)
	return app
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()
	log := d.Log.Named("routes")

	BaseRoutes(app, d.DB, d.Config)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// 🔐 admin: dipasang per-route, bukan per-group
	requireAdmin := authMiddleware.AuthMiddleware(d.DB, d.Config.JWT.Secret, d.Log)

	log.Info("Setting up UserRoutes...")
	routeDetails.UserRoutes(api, d.DB, d.Config, d.Log, requireAdmin)

	log.Info("Setting up DonationRoutes...")
	routeDetails.DonationRoutes(api, d.DB, d.Config, d.Gateway, d.Log, requireAdmin)

	log.Info("Setting up ContentRoutes...")
	routeDetails.ContentRoutes(api, d.DB, requireAdmin)

	StaticRoutes(app, d.Config)
}
