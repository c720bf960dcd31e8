package repository

import (
	"context"

	"gorm.io/gorm"

	"colosagu_backend/internals/features/donations/donations/model"
)

type GatewayEventRepository struct {
	db *gorm.DB
}

func NewGatewayEventRepository(db *gorm.DB) *GatewayEventRepository {
	return &GatewayEventRepository{db: db}
}

func (r *GatewayEventRepository) Create(ctx context.Context, ev *model.DonationGatewayEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

// ListByOrderID riwayat notifikasi untuk satu order (paged).
func (r *GatewayEventRepository) ListByOrderID(ctx context.Context, orderID, orderBy string, limit, offset int) ([]model.DonationGatewayEvent, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.DonationGatewayEvent{}).Where("order_id = ?", orderID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.DonationGatewayEvent
	err := base().Order(orderBy).Order("id DESC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}
