package dto

import (
	"strings"

	"colosagu_backend/internals/features/content/blog_posts/model"
)

type BlogPostRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Excerpt     string `json:"excerpt" validate:"required"`
	Content     string `json:"content"`
	Author      string `json:"author" validate:"omitempty,max=255"`
	IsPublished bool   `json:"is_published"`
}

func (r *BlogPostRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.Author = strings.TrimSpace(r.Author)
	if r.Author == "" {
		r.Author = model.DefaultAuthor
	}
}

// Apply tidak menyentuh slug; slug diatur controller.
func (r *BlogPostRequest) Apply(m *model.BlogPostModel) {
	m.Title = r.Title
	m.Excerpt = r.Excerpt
	m.Content = r.Content
	m.Author = r.Author
	m.IsPublished = r.IsPublished
}
