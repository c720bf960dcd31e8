package model

import "time"

// DonationEvent periode penggalangan donasi. Donasi selalu diatribusikan ke
// event yang sedang berjalan saat dibuat.
type DonationEvent struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_donation_events_active_range,priority:2" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_donation_events_active_range,priority:3" json:"end_date"`
	IsActive  bool      `gorm:"column:is_active;not null;default:false;index:idx_donation_events_active_range,priority:1" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DonationEvent) TableName() string { return "donation_events" }
