package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"colosagu_backend/internals/features/users/auth/model"
	"colosagu_backend/internals/features/users/auth/repository"
	"colosagu_backend/internals/testutil"
)

func TestRunBlacklistCleanup(t *testing.T) {
	db := testutil.NewTestDB(t, &model.TokenBlacklist{})
	repo := repository.NewTokenBlacklistRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Blacklist(ctx, "lama", now.Add(-time.Minute)))
	require.NoError(t, repo.Blacklist(ctx, "masih-berlaku", now.Add(time.Hour)))

	RunBlacklistCleanup(ctx, repo, now, zap.NewNop())

	gone, err := repo.IsBlacklisted(ctx, "lama")
	require.NoError(t, err)
	assert.False(t, gone)

	kept, err := repo.IsBlacklisted(ctx, "masih-berlaku")
	require.NoError(t, err)
	assert.True(t, kept)
}

func TestStartBlacklistCleanupScheduler_RunsImmediately(t *testing.T) {
	db := testutil.NewTestDB(t, &model.TokenBlacklist{})
	repo := repository.NewTokenBlacklistRepository(db)
	require.NoError(t, repo.Blacklist(context.Background(), "lama", time.Now().Add(-time.Hour)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartBlacklistCleanupScheduler(ctx, db, time.Hour, zap.NewNop())

	assert.Eventually(t, func() bool {
		var count int64
		if err := db.Model(&model.TokenBlacklist{}).Count(&count).Error; err != nil {
			return false
		}
		return count == 0
	}, 2*time.Second, 20*time.Millisecond)
}
