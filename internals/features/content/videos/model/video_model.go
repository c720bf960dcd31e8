package model

import "time"

type VideoModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	YoutubeURL   string    `gorm:"column:youtube_url;type:text;not null" json:"youtube_url"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url"`
	IsFeatured   bool      `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}
