package routes

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type created struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

func TestBlogPosts_SlugLifecycle(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken(t)

	post := fiber.Map{"title": "Panen Sagu Perdana!", "excerpt": "Ringkasan", "content": "Isi", "is_published": true}
	code, body := h.do(t, http.MethodPost, "/api/blog-posts", post, admin)
	require.Equal(t, http.StatusCreated, code, string(body))
	first := decode[created](t, body)
	assert.Equal(t, "panen-sagu-perdana", first.Data["slug"])
	assert.Equal(t, "Colo Sagu Team", first.Data["author"])

	// judul sama → slug diberi akhiran
	post["is_published"] = false
	code, body = h.do(t, http.MethodPost, "/api/blog-posts", post, admin)
	require.Equal(t, http.StatusCreated, code)
	second := decode[created](t, body)
	assert.Equal(t, "panen-sagu-perdana-2", second.Data["slug"])

	code, body = h.do(t, http.MethodGet, "/api/blog-posts/panen-sagu-perdana", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Isi", decode[map[string]any](t, body)["content"])

	code, body = h.do(t, http.MethodGet, "/api/blog-posts?published=true", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	code, body = h.do(t, http.MethodGet, "/api/blog-posts", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 2)

	// ganti judul → slug ikut berubah
	id := strconv.Itoa(int(second.Data["id"].(float64)))
	code, body = h.do(t, http.MethodPut, "/api/blog-posts/"+id,
		fiber.Map{"title": "Festival Sagu", "excerpt": "Baru"}, admin)
	require.Equal(t, http.StatusOK, code, string(body))
	assert.Equal(t, "festival-sagu", decode[created](t, body).Data["slug"])

	code, _ = h.do(t, http.MethodDelete, "/api/blog-posts/"+id, nil, admin)
	assert.Equal(t, http.StatusOK, code)
	code, _ = h.do(t, http.MethodGet, "/api/blog-posts/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = h.do(t, http.MethodPost, "/api/blog-posts", fiber.Map{"title": "Tanpa excerpt"}, admin)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestVideos_ThumbnailAndFilter(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken(t)

	code, body := h.do(t, http.MethodPost, "/api/videos",
		fiber.Map{"title": "Profil", "youtube_url": "https://youtu.be/abc123XYZ", "is_featured": true}, admin)
	require.Equal(t, http.StatusCreated, code, string(body))
	assert.Equal(t, "https://img.youtube.com/vi/abc123XYZ/hqdefault.jpg", decode[created](t, body).Data["thumbnail_url"])

	code, _ = h.do(t, http.MethodPost, "/api/videos",
		fiber.Map{"title": "Lain", "youtube_url": "https://www.youtube.com/watch?v=zzz"}, admin)
	require.Equal(t, http.StatusCreated, code)

	code, body = h.do(t, http.MethodGet, "/api/videos?featured=true", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	code, _ = h.do(t, http.MethodPost, "/api/videos", fiber.Map{"title": "x", "youtube_url": "bukan url"}, admin)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProgramsAndGallery(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken(t)

	code, _ := h.do(t, http.MethodPost, "/api/programs", fiber.Map{"title": "Pelatihan"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := h.do(t, http.MethodPost, "/api/programs",
		fiber.Map{"title": "Pelatihan", "description": "Olah sagu", "icon": "leaf", "is_active": true}, admin)
	require.Equal(t, http.StatusCreated, code, string(body))
	assert.Equal(t, "Aktif", decode[created](t, body).Data["status"])

	code, _ = h.do(t, http.MethodPost, "/api/programs",
		fiber.Map{"title": "Arsip", "description": "Lama", "icon": "box", "status": "Selesai"}, admin)
	require.Equal(t, http.StatusCreated, code)

	code, body = h.do(t, http.MethodGet, "/api/programs?active=true", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	code, body = h.do(t, http.MethodPost, "/api/gallery", fiber.Map{"title": "Panen", "url": "/gallery/panen.jpg"}, admin)
	require.Equal(t, http.StatusCreated, code, string(body))
	id := strconv.Itoa(int(decode[created](t, body).Data["id"].(float64)))

	code, _ = h.do(t, http.MethodPut, "/api/gallery/"+id, fiber.Map{"title": "Panen Raya", "url": "/gallery/panen.jpg"}, admin)
	assert.Equal(t, http.StatusOK, code)

	code, body = h.do(t, http.MethodGet, "/api/gallery", nil, "")
	require.Equal(t, http.StatusOK, code)
	items := decode[[]map[string]any](t, body)
	require.Len(t, items, 1)
	assert.Equal(t, "Panen Raya", items[0]["title"])

	code, _ = h.do(t, http.MethodDelete, "/api/gallery/"+id, nil, admin)
	assert.Equal(t, http.StatusOK, code)
	code, _ = h.do(t, http.MethodDelete, "/api/gallery/"+id, nil, admin)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUsers_AdminCRUD(t *testing.T) {
	h := newHarness(t)
	admin := h.adminToken(t)

	code, _ := h.do(t, http.MethodGet, "/api/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := h.do(t, http.MethodPost, "/api/users",
		fiber.Map{"email": "staf@colosagu.id", "name": "Staf", "password": "rahasia123"}, admin)
	require.Equal(t, http.StatusCreated, code, string(body))
	assert.NotContains(t, string(body), "rahasia123")

	code, _ = h.do(t, http.MethodPost, "/api/users",
		fiber.Map{"email": "staf@colosagu.id", "name": "Dobel", "password": "rahasia123"}, admin)
	assert.Equal(t, http.StatusConflict, code)

	code, body = h.do(t, http.MethodGet, "/api/users", nil, admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 2)
	assert.NotContains(t, string(body), "password")
}
