package dto

import (
	"net/url"
	"strings"

	"colosagu_backend/internals/features/content/videos/model"
)

type VideoRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description"`
	YoutubeURL   string `json:"youtube_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	IsFeatured   bool   `json:"is_featured"`
}

// Normalize trim field; thumbnail kosong diisi dari id video YouTube.
func (r *VideoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.YoutubeURL = strings.TrimSpace(r.YoutubeURL)
	r.ThumbnailURL = strings.TrimSpace(r.ThumbnailURL)
	if r.ThumbnailURL == "" {
		if id := YoutubeID(r.YoutubeURL); id != "" {
			r.ThumbnailURL = "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
		}
	}
}

func (r *VideoRequest) Apply(m *model.VideoModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.YoutubeURL = r.YoutubeURL
	m.ThumbnailURL = r.ThumbnailURL
	m.IsFeatured = r.IsFeatured
}

// YoutubeID ambil id dari youtu.be/<id>, youtube.com/watch?v=<id>, /embed/<id>, /shorts/<id>.
func YoutubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.Trim(u.Path, "/")
	switch {
	case host == "youtu.be":
		return strings.Split(path, "/")[0]
	case strings.HasSuffix(host, "youtube.com"):
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		parts := strings.Split(path, "/")
		if len(parts) == 2 && (parts[0] == "embed" || parts[0] == "shorts") {
			return parts[1]
		}
	}
	return ""
}
