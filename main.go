package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"colosagu_backend/internals/configs"
	database "colosagu_backend/internals/databases"
	"colosagu_backend/internals/features/donations/donations/service"
	scheduler "colosagu_backend/internals/features/users/auth/scheduler"
	"colosagu_backend/internals/logger"
	routes "colosagu_backend/internals/route"
	"colosagu_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	log := logger.New(cfg)
	defer func() { _ = log.Sync() }()

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg.DB, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	database.TunePool(db, cfg.DB, log)
	database.WarmUpQueries(db, log)

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal("auto migrate", zap.Error(err))
		}
	}
	if err := seeds.RunAllSeeds(context.Background(), db, cfg, log); err != nil {
		log.Fatal("seed", zap.Error(err))
	}

	// ⏱ scheduler setelah DB siap
	bgCtx, stopBg := context.WithCancel(context.Background())
	defer stopBg()
	scheduler.StartBlacklistCleanupScheduler(bgCtx, db, cfg.JWT.BlacklistCleanup, log)

	// ✅ MIDTRANS
	gw := service.NewMidtransGateway(cfg.Midtrans)

	app := routes.NewApp(routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Gateway: gw,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Info("✅ Listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	stopBg()

	database.Close(db)
}
