package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/content/programs/dto"
	"colosagu_backend/internals/features/content/programs/model"
	helper "colosagu_backend/internals/helpers"
)

type ProgramController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db, Validator: validator.New()}
}

// =============================
// 📄 Get All Programs (?active=true → hanya yang aktif)
// =============================
func (ctrl *ProgramController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProgramModel{})
	if c.QueryBool("active", false) {
		q = q.Where("is_active = ?", true)
	}
	programs := make([]model.ProgramModel, 0)
	if err := q.Order("created_at DESC, id DESC").Find(&programs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve programs")
	}
	return c.JSON(programs)
}

// =============================
// ➕ Create Program
// =============================
func (ctrl *ProgramController) Create(c *fiber.Ctx) error {
	var body dto.ProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.ProgramModel
	body.Apply(&p)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create program")
	}
	return helper.JsonCreated(c, "Program created", p)
}

// =============================
// 🔄 Update Program
// =============================
func (ctrl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.ProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.ProgramModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve program")
	}
	body.Apply(&p)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update program")
	}
	return helper.JsonUpdated(c, "Program updated", p)
}

// =============================
// 🗑️ Delete Program
// =============================
func (ctrl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.ProgramModel{}, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Program not found")
	}
	return helper.JsonDeleted(c, "Program deleted", fiber.Map{"id": id})
}
