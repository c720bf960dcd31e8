package repository

import (
	"context"

	"gorm.io/gorm"

	"colosagu_backend/internals/features/donations/donations/model"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, d *model.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// FindByOrderID mengembalikan gorm.ErrRecordNotFound kalau order tidak ada.
func (r *DonationRepository) FindByOrderID(ctx context.Context, orderID string) (*model.Donation, error) {
	var d model.Donation
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Take(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// TransitionStatus update bersyarat dalam satu statement: hanya menulis kalau
// status berbeda dan baris belum terminal. false = tidak ada baris yang berubah.
func (r *DonationRepository) TransitionStatus(ctx context.Context, orderID, status string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("order_id = ? AND status <> ? AND status NOT IN ?", orderID, status, model.TerminalStatuses).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SumSettledByEvent total amount berstatus settlement untuk satu event (0 kalau kosong).
func (r *DonationRepository) SumSettledByEvent(ctx context.Context, eventID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND event_id = ?", model.StatusSettlement, eventID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ListWithEvent semua donasi terbaru dulu, dengan nama event (boleh null).
func (r *DonationRepository) ListWithEvent(ctx context.Context) ([]model.DonationRow, error) {
	rows := make([]model.DonationRow, 0)
	err := r.db.WithContext(ctx).
		Table("donations AS d").
		Select(`d.id, d.order_id, d.name, d.amount, d.status, d.snap_token,
			d.event_id, e.name AS event_name, d.created_at`).
		Joins("LEFT JOIN donation_events e ON e.id = d.event_id").
		Order("d.created_at DESC, d.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
