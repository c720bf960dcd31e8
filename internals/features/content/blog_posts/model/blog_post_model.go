package model

import "time"

const DefaultAuthor = "Colo Sagu Team"

// BlogPostModel artikel blog; slug diturunkan dari title dan unik (case-insensitive).
type BlogPostModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(160);not null;uniqueIndex:uq_blog_posts_slug" json:"slug"`
	Excerpt     string    `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	Content     string    `gorm:"column:content" json:"content"`
	Author      string    `gorm:"column:author;type:varchar(255);not null;default:Colo Sagu Team" json:"author"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false;index" json:"is_published"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}
