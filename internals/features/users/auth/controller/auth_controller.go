package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	"colosagu_backend/internals/features/users/auth/dto"
	"colosagu_backend/internals/features/users/auth/service"
	userModel "colosagu_backend/internals/features/users/user/model"
	helper "colosagu_backend/internals/helpers"
	helpersAuth "colosagu_backend/internals/helpers/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Service   *service.AuthService
	Validator *validator.Validate
	Secure    bool
	Log       *zap.Logger
}

func NewAuthController(db *gorm.DB, cfg *configs.Config, log *zap.Logger) *AuthController {
	return &AuthController{
		DB:        db,
		Service:   service.NewAuthService(db, cfg.JWT, log),
		Validator: validator.New(),
		Secure:    cfg.IsProduction(),
		Log:       log.Named("auth_http"),
	}
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email dan password diperlukan")
	}

	res, err := ac.Service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		ac.Log.Error("[DB] login", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   ac.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   res.Token,
		User: dto.LoginUser{
			ID:    res.User.ID,
			Email: res.User.Email,
			Name:  res.User.Name,
		},
	})
}

// POST /api/logout: blacklist token (jika ada) + hapus cookie
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if tok, err := helpersAuth.ExtractAccessToken(c); err == nil {
		if err := ac.Service.Logout(c.UserContext(), tok); err != nil {
			ac.Log.Error("[DB] blacklist token", zap.Error(err))
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   ac.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, err := helpersAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var u userModel.UserModel
	if err := ac.DB.WithContext(c.UserContext()).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(dto.LoginUser{ID: u.ID, Email: u.Email, Name: u.Name})
}
