package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "colosagu_backend/internals/features/users/auth/repository"
	userModel "colosagu_backend/internals/features/users/user/model"
	helper "colosagu_backend/internals/helpers"
	helpersAuth "colosagu_backend/internals/helpers/auth"
)

// AuthMiddleware verifikasi access token admin lalu isi Locals user.
func AuthMiddleware(db *gorm.DB, secret string, log *zap.Logger) fiber.Handler {
	log = log.Named("auth_mw")
	blacklist := authRepo.NewTokenBlacklistRepository(db)
	return func(c *fiber.Ctx) error {
		if secret == "" {
			log.Error("JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		tokenString, err := helpersAuth.ExtractAccessToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		claims, err := helpersAuth.ParseAccessToken(secret, tokenString)
		if err != nil {
			log.Debug("token rejected", zap.Error(err))
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		// token yang sudah logout
		revoked, err := blacklist.IsBlacklisted(c.UserContext(), tokenString)
		if err != nil {
			log.Error("[DB] cek blacklist", zap.Error(err))
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if revoked {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		userID, err := claims.UserID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		// user yang sudah dihapus tidak boleh lanjut walau token belum exp
		var u userModel.UserModel
		if err := db.WithContext(c.UserContext()).Select("id", "email", "name").First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Error("[DB] lookup user", zap.Error(err))
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals(helpersAuth.LocUserID, u.ID)
		c.Locals(helpersAuth.LocUserEmail, u.Email)
		c.Locals(helpersAuth.LocUserName, u.Name)
		return c.Next()
	}
}
