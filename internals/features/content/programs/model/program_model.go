package model

import "time"

const DefaultProgramStatus = "Aktif"

type ProgramModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Icon        string    `gorm:"column:icon;type:varchar(100);not null" json:"icon"`
	Status      string    `gorm:"column:status;type:varchar(50);not null;default:Aktif" json:"status"`
	IsActive    bool      `gorm:"column:is_active;not null;default:false" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
