package model

import "time"

type GalleryModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	URL       string    `gorm:"column:url;type:text;not null" json:"url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for GalleryModel
func (GalleryModel) TableName() string {
	return "gallery"
}
