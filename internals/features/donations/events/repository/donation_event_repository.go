package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"colosagu_backend/internals/features/donations/events/model"
)

type DonationEventRepository struct {
	db *gorm.DB
}

func NewDonationEventRepository(db *gorm.DB) *DonationEventRepository {
	return &DonationEventRepository{db: db}
}

// FindCurrent mengembalikan event aktif yang rentangnya memuat today.
// Bila ada lebih dari satu, event terbaru (id terbesar) yang dipakai.
// (nil, nil) kalau tidak ada.
func (r *DonationEventRepository) FindCurrent(ctx context.Context, today time.Time) (*model.DonationEvent, error) {
	var ev model.DonationEvent
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, today, today).
		Order("id DESC").
		Take(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *DonationEventRepository) List(ctx context.Context) ([]model.DonationEvent, error) {
	var rows []model.DonationEvent
	if err := r.db.WithContext(ctx).Order("start_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DonationEventRepository) FindByID(ctx context.Context, id uint) (*model.DonationEvent, error) {
	var ev model.DonationEvent
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// FindActiveOverlap mencari event aktif lain yang rentangnya beririsan dengan ev.
func (r *DonationEventRepository) FindActiveOverlap(ctx context.Context, ev *model.DonationEvent) (*model.DonationEvent, error) {
	var other model.DonationEvent
	q := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, ev.EndDate, ev.StartDate)
	if ev.ID != 0 {
		q = q.Where("id <> ?", ev.ID)
	}
	err := q.Order("id DESC").Take(&other).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &other, nil
}

func (r *DonationEventRepository) Create(ctx context.Context, ev *model.DonationEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *DonationEventRepository) Save(ctx context.Context, ev *model.DonationEvent) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

// Delete tanpa cascade: donasi tetap menyimpan event_id lama.
func (r *DonationEventRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.DonationEvent{}, id)
	return res.RowsAffected > 0, res.Error
}
