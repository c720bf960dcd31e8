package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler membersihkan token_blacklist yang sudah exp
// setiap interval sampai ctx dibatalkan.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	repo := repository.NewTokenBlacklistRepository(db)
	log = log.Named("cleanup")

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			RunBlacklistCleanup(ctx, repo, time.Now(), log)
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// RunBlacklistCleanup satu putaran pembersihan.
func RunBlacklistCleanup(ctx context.Context, repo *repository.TokenBlacklistRepository, now time.Time, log *zap.Logger) {
	n, err := repo.PurgeExpired(ctx, now)
	if err != nil {
		log.Error("[CLEANUP ERROR] Gagal hapus token kadaluarsa", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("[CLEANUP] token kadaluarsa dihapus", zap.Int64("count", n))
	}
}
