package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/blog_posts/dto"
	"colosagu_backend/internals/features/content/blog_posts/model"
	helper "colosagu_backend/internals/helpers"
)

const blogSlugMaxLen = 160

type BlogPostController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBlogPostController(db *gorm.DB) *BlogPostController {
	return &BlogPostController{DB: db, Validator: validator.New()}
}

// GET /api/blog-posts (?published=true untuk halaman publik)
func (ctrl *BlogPostController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.BlogPostModel{})
	if c.QueryBool("published", false) {
		q = q.Where("is_published = ?", true)
	}
	posts := make([]model.BlogPostModel, 0)
	if err := q.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve blog posts")
	}
	return c.JSON(posts)
}

// GET /api/blog-posts/:key: key berupa id numerik atau slug
func (ctrl *BlogPostController) GetOne(c *fiber.Ctx) error {
	key := c.Params("key")
	q := ctrl.DB.WithContext(c.UserContext())
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		q = q.Where("id = ?", id)
	} else {
		q = q.Where("LOWER(slug) = LOWER(?)", key)
	}

	var post model.BlogPostModel
	if err := q.Take(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve blog post")
	}
	return c.JSON(post)
}

func (ctrl *BlogPostController) Create(c *fiber.Ctx) error {
	var body dto.BlogPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.BlogPostModel
	body.Apply(&post)

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "blog_posts", "slug",
		helper.Slugify(post.Title, blogSlugMaxLen), nil, blogSlugMaxLen)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}
	post.Slug = slug

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create blog post")
	}
	return helper.JsonCreated(c, "Blog post created", post)
}

// Update: slug ikut berubah kalau judul berubah.
func (ctrl *BlogPostController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "key")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.BlogPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var post model.BlogPostModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve blog post")
	}

	titleChanged := post.Title != body.Title
	body.Apply(&post)
	if titleChanged || post.Slug == "" {
		slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "blog_posts", "slug",
			helper.Slugify(post.Title, blogSlugMaxLen),
			func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", post.ID) },
			blogSlugMaxLen)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		post.Slug = slug
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update blog post")
	}
	return helper.JsonUpdated(c, "Blog post updated", post)
}

func (ctrl *BlogPostController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "key")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.BlogPostModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete blog post")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Blog post not found")
	}
	return helper.JsonDeleted(c, "Blog post deleted", fiber.Map{"id": id})
}
