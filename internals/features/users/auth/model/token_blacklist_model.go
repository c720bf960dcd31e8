package model

import "time"

// TokenBlacklist access token yang sudah di-logout sebelum exp.
// Yang disimpan sidik jari sha256, bukan token mentah.
type TokenBlacklist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Fingerprint string    `gorm:"column:fingerprint;type:char(64);not null;uniqueIndex" json:"fingerprint"`
	ExpiredAt   time.Time `gorm:"column:expired_at;not null;index" json:"expired_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
