package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authService "colosagu_backend/internals/features/users/auth/service"
	"colosagu_backend/internals/features/users/user/dto"
	"colosagu_backend/internals/features/users/user/model"
	helper "colosagu_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Log       *zap.Logger
}

func NewUserController(db *gorm.DB, log *zap.Logger) *UserController {
	return &UserController{DB: db, Validator: validator.New(), Log: log.Named("user")}
}

// GET /api/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).Order("id ASC").Find(&users).Error; err != nil {
		uc.Log.Error("[DB] fetch users", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	return c.JSON(dto.FromModels(users))
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	u := model.UserModel{Email: req.Email, Name: req.Name, Password: hashed}
	if err := uc.DB.WithContext(c.UserContext()).Create(&u).Error; err != nil {
		if isDuplicate(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		uc.Log.Error("[DB] create user", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(&u))
}

// PUT /api/users/:id: password hanya diganti kalau diisi
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	u.Email = req.Email
	u.Name = req.Name
	if req.Password != "" {
		hashed, err := authService.HashPassword(req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		u.Password = hashed
	}

	if err := uc.DB.WithContext(c.UserContext()).Save(&u).Error; err != nil {
		if isDuplicate(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		uc.Log.Error("[DB] update user", zap.Uint("id", id), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(&u))
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := uc.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, id)
	if res.Error != nil {
		uc.Log.Error("[DB] delete user", zap.Uint("id", id), zap.Error(res.Error))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate") || strings.Contains(s, "unique constraint")
}
