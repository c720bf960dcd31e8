package dto

import (
	"strings"

	"colosagu_backend/internals/features/content/gallery/model"
)

type GalleryRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	URL   string `json:"url" validate:"required"`
}

func (r *GalleryRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.URL = strings.TrimSpace(r.URL)
}

func (r *GalleryRequest) ToModel() model.GalleryModel {
	return model.GalleryModel{Title: r.Title, URL: r.URL}
}
