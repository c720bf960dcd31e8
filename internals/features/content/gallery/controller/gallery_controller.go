package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/gallery/dto"
	"colosagu_backend/internals/features/content/gallery/model"
	helper "colosagu_backend/internals/helpers"
)

var validateGallery = validator.New()

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// =============================
// 📄 Get All Gallery
// =============================
func (ctrl *GalleryController) GetAll(c *fiber.Ctx) error {
	items := make([]model.GalleryModel, 0)
	if err := ctrl.DB.WithContext(c.UserContext()).Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve gallery")
	}
	return c.JSON(items)
}

// =============================
// ➕ Create Gallery Item
// =============================
func (ctrl *GalleryController) Create(c *fiber.Ctx) error {
	var body dto.GalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	item := body.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create gallery item")
	}
	return helper.JsonCreated(c, "Gallery item created", item)
}

// =============================
// 🔄 Update Gallery Item
// =============================
func (ctrl *GalleryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body dto.GalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := validateGallery.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var item model.GalleryModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gallery item not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve gallery item")
	}

	item.Title = body.Title
	item.URL = body.URL
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update gallery item")
	}
	return helper.JsonUpdated(c, "Gallery item updated", item)
}

// =============================
// 🗑️ Delete Gallery Item
// =============================
func (ctrl *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.GalleryModel{}, id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete gallery item")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Gallery item not found")
	}
	return helper.JsonDeleted(c, "Gallery item deleted", fiber.Map{"id": id})
}
