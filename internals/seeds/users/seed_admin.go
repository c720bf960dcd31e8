package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	authService "colosagu_backend/internals/features/users/auth/service"
	"colosagu_backend/internals/features/users/user/model"
)

// SeedAdmin membuat akun admin dari ENV kalau email tersebut belum terdaftar.
// Tanpa SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD tidak melakukan apa-apa.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg configs.SeedConfig, log *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Debug("seed admin dilewati (ENV kosong)")
		return nil
	}

	var existing model.UserModel
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("ℹ️ Admin sudah ada, dilewati.", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// 🔐 Hash password sebelum disimpan
	hashed, err := authService.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(cfg.AdminName)
	if name == "" {
		name = "Admin"
	}
	u := model.UserModel{Email: email, Name: name, Password: hashed}
	if err := db.WithContext(ctx).Create(&u).Error; err != nil {
		return err
	}
	log.Info("✅ Admin dibuat", zap.String("email", email), zap.Uint("id", u.ID))
	return nil
}
