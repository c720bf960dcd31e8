package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYoutubeID(t *testing.T) {
	cases := map[string]string{
		"https://youtu.be/abc123":                  "abc123",
		"https://www.youtube.com/watch?v=xyz&t=10": "xyz",
		"https://m.youtube.com/watch?v=mob":        "mob",
		"https://youtube.com/embed/emb1":           "emb1",
		"https://www.youtube.com/shorts/sh0rt":     "sh0rt",
		"https://www.youtube.com/channel/UCxxxx":   "",
		"https://vimeo.com/123":                    "",
		"bukan url":                                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, YoutubeID(in), in)
	}
}

func TestVideoRequestNormalize_KeepsExplicitThumbnail(t *testing.T) {
	r := VideoRequest{YoutubeURL: " https://youtu.be/abc ", ThumbnailURL: " https://cdn.id/t.jpg "}
	r.Normalize()
	assert.Equal(t, "https://youtu.be/abc", r.YoutubeURL)
	assert.Equal(t, "https://cdn.id/t.jpg", r.ThumbnailURL)
}
