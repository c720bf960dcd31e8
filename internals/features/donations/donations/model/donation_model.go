package model

import "time"

// Donation satu transaksi donasi. order_id tidak pernah berubah setelah dibuat;
// yang berubah hanya status.
type Donation struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID   string `gorm:"column:order_id;type:varchar(64);not null;uniqueIndex:uq_donations_order_id" json:"order_id"`
	Name      string `gorm:"column:name;type:varchar(255);not null;default:Donatur" json:"name"`
	Amount    int64  `gorm:"column:amount;not null" json:"amount"`
	Status    string `gorm:"column:status;type:varchar(32);not null;default:pending;index:idx_donations_event_status,priority:2" json:"status"`
	SnapToken string `gorm:"column:snap_token;type:varchar(255)" json:"snap_token"`

	// referensi lemah, tanpa FK cascade
	EventID *uint `gorm:"column:event_id;index:idx_donations_event_status,priority:1" json:"event_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donation) TableName() string { return "donations" }

// DonationRow baris list donasi + nama event (LEFT JOIN).
type DonationRow struct {
	ID        uint      `json:"id"`
	OrderID   string    `json:"order_id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	SnapToken string    `json:"snap_token"`
	EventID   *uint     `json:"event_id"`
	EventName *string   `json:"event_name"`
	CreatedAt time.Time `json:"created_at"`
}
