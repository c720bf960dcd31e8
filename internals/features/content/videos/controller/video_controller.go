package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/videos/dto"
	"colosagu_backend/internals/features/content/videos/model"
	helper "colosagu_backend/internals/helpers"
)

type VideoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db, Validator: validator.New()}
}

// GET /api/videos: ?featured=true untuk video unggulan saja
func (ctrl *VideoController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.VideoModel{})
	if c.QueryBool("featured", false) {
		q = q.Where("is_featured = ?", true)
	}
	videos := make([]model.VideoModel, 0)
	if err := q.Order("created_at DESC, id DESC").Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve videos")
	}
	return c.JSON(videos)
}

func (ctrl *VideoController) Create(c *fiber.Ctx) error {
	var body dto.VideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var v model.VideoModel
	body.Apply(&v)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&v).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create video")
	}
	return helper.JsonCreated(c, "Video created", v)
}

func (ctrl *VideoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.VideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var v model.VideoModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve video")
	}
	body.Apply(&v)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&v).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update video")
	}
	return helper.JsonUpdated(c, "Video updated", v)
}

func (ctrl *VideoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.VideoModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete video")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
	}
	return helper.JsonDeleted(c, "Video deleted", fiber.Map{"id": id})
}
