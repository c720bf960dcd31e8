package database

import (
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"colosagu_backend/internals/configs"
	eventModel "colosagu_backend/internals/features/donations/events/model"
	donationModel "colosagu_backend/internals/features/donations/donations/model"
	blogModel "colosagu_backend/internals/features/content/blog_posts/model"
	galleryModel "colosagu_backend/internals/features/content/gallery/model"
	programModel "colosagu_backend/internals/features/content/programs/model"
	videoModel "colosagu_backend/internals/features/content/videos/model"
	authModel "colosagu_backend/internals/features/users/auth/model"
	userModel "colosagu_backend/internals/features/users/user/model"
)

// ConnectDB membuka koneksi sesuai DB_DRIVER (mysql default, postgres opsional).
func ConnectDB(cfg configs.DBConfig, log *zap.Logger) (*gorm.DB, error) {
	log.Info("🔌 Koneksi ke database...", zap.String("driver", cfg.Driver), zap.String("host", cfg.Host))

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  PostgresDSN(cfg),
			PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
		})
	default:
		dialector = mysql.Open(MySQLDSN(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: configs.NewGormLogger(log, gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}
	log.Info("✅ DB connected.")
	return db, nil
}

// PostgresDSN: sesi TimeZone=UTC supaya parameter waktu (tengah malam UTC)
// di-cast ke DATE pada tanggal yang sama, apa pun TimeZone default server.
// statement_timeout selaras dengan timeout request.
func PostgresDSN(cfg configs.DBConfig) string {
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	q.Set("application_name", "colosagu")
	q.Set("options", "-c statement_timeout=3000 -c TimeZone=UTC")
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// MySQLDSN: loc=UTC, kolom DATE dibaca/ditulis sebagai tengah malam UTC.
func MySQLDSN(cfg configs.DBConfig) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name,
	)
}

func TunePool(db *gorm.DB, cfg configs.DBConfig, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("pool tune err", zap.Error(err))
		return
	}
	// ⚖️ connectionLimit 10 seperti pool mysql2 lama
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen / 2
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries(db *gorm.DB, log *zap.Logger) {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := Ping(db); err != nil {
			log.Warn("warm-up ping err", zap.Error(err))
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Models daftar tabel yang dikelola aplikasi.
func Models() []any {
	return []any{
		&eventModel.DonationEvent{},
		&donationModel.Donation{},
		&donationModel.DonationGatewayEvent{},
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&galleryModel.GalleryModel{},
		&videoModel.VideoModel{},
		&programModel.ProgramModel{},
		&blogModel.BlogPostModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
