package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	"colosagu_backend/internals/features/users/auth/repository"
	userModel "colosagu_backend/internals/features/users/user/model"
	helpersAuth "colosagu_backend/internals/helpers/auth"
)

var ErrInvalidCredentials = errors.New("Email atau password salah")

type AuthService struct {
	db        *gorm.DB
	blacklist *repository.TokenBlacklistRepository
	jwt       configs.JWTConfig
	now       func() time.Time
	log       *zap.Logger
}

func NewAuthService(db *gorm.DB, jwtCfg configs.JWTConfig, log *zap.Logger) *AuthService {
	return &AuthService{
		db:        db,
		blacklist: repository.NewTokenBlacklistRepository(db),
		jwt:       jwtCfg,
		now:       time.Now,
		log:       log.Named("auth"),
	}
}

type LoginResult struct {
	User      userModel.UserModel
	Token     string
	ExpiresAt time.Time
}

// Login cek email+password lalu terbitkan access token.
// Password lama yang masih plaintext di-hash ulang saat cocok.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u userModel.UserModel
	err := s.db.WithContext(ctx).Where("LOWER(email) = ?", email).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if userModel.IsBcryptHash(u.Password) {
		if !ComparePassword(u.Password, password) {
			s.log.Debug("password mismatch", zap.Uint("user_id", u.ID))
			return nil, ErrInvalidCredentials
		}
	} else {
		if u.Password == "" || u.Password != password {
			return nil, ErrInvalidCredentials
		}
		hashed, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Model(&u).Update("password", hashed).Error; err != nil {
			return nil, err
		}
		u.Password = hashed
		s.log.Info("[DB] legacy password hashed during login", zap.Uint("user_id", u.ID))
	}

	ttl := s.jwt.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	tok, exp, err := helpersAuth.IssueAccessToken(s.jwt.Secret, u.ID, u.Email, u.Name, ttl, s.now())
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Token: tok, ExpiresAt: exp}, nil
}

// Logout mem-blacklist access token sampai exp-nya. Token yang sudah tidak
// valid (exp/signature salah) tidak perlu dicatat.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := helpersAuth.ParseAccessToken(s.jwt.Secret, token)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.blacklist.Blacklist(ctx, token, claims.ExpiresAt.Time); err != nil {
		return err
	}
	if id, err := claims.UserID(); err == nil {
		s.log.Info("token revoked", zap.Uint("user_id", id))
	}
	return nil
}
