package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"colosagu_backend/internals/features/users/auth/model"
	helpersAuth "colosagu_backend/internals/helpers/auth"
)

type TokenBlacklistRepository struct {
	db *gorm.DB
}

func NewTokenBlacklistRepository(db *gorm.DB) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{db: db}
}

// Blacklist idempotent: token yang sama dua kali tidak error.
func (r *TokenBlacklistRepository) Blacklist(ctx context.Context, token string, expiredAt time.Time) error {
	row := model.TokenBlacklist{
		Fingerprint: helpersAuth.TokenFingerprint(token),
		ExpiredAt:   expiredAt.UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "fingerprint"}}, DoNothing: true}).
		Create(&row).Error
}

func (r *TokenBlacklistRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TokenBlacklist{}).
		Where("fingerprint = ?", helpersAuth.TokenFingerprint(token)).
		Count(&count).Error
	return count > 0, err
}

// PurgeExpired hapus entri yang token-nya sudah exp sebelum `before`.
func (r *TokenBlacklistRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expired_at < ?", before.UTC()).
		Delete(&model.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
