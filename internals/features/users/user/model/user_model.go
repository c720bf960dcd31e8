package model

import (
	"strings"
	"time"
)

// UserModel admin panel. Password berupa hash bcrypt, kecuali baris lama
// yang masih plaintext (di-hash ulang saat login pertama).
type UserModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	Name      string    `gorm:"column:name;type:varchar(255)" json:"name"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string { return "users" }

// IsBcryptHash cek bentuk hash bcrypt ($2a$, $2b$, $2y$).
func IsBcryptHash(s string) bool {
	return len(s) == 60 &&
		(strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
