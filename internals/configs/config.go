package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// =======================
// CONFIG
// =======================

type DBConfig struct {
	Driver      string // "mysql" | "postgres"
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool

	MaxOpenConns int
	MaxIdleConns int
}

type MidtransConfig struct {
	ServerKey       string
	ClientKey       string
	MerchantID      string
	IsProduction    bool
	Timeout         time.Duration
	VerifySignature bool
}

type JWTConfig struct {
	Secret           string
	TTL              time.Duration
	BlacklistCleanup time.Duration // interval pembersihan token_blacklist
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	EventsFile    string // JSON daftar event awal (opsional)
}

type Config struct {
	AppEnv         string
	AppName        string
	Port           string
	Timezone       string
	Location       *time.Location
	RequestTimeout time.Duration

	DB       DBConfig
	Midtrans MidtransConfig
	JWT      JWTConfig
	Seed     SeedConfig

	CORSAllowOrigins []string
	TrustedProxies   []string // CIDR proxy yang boleh mengisi X-Forwarded-For
	StaticDir        string
	GalleryDir       string
}

// Origin bawaan sama dengan whitelist server lama.
var defaultAllowOrigins = []string{
	"http://localhost:8080",
	"http://localhost:3000",
	"http://localhost:3001",
	"https://colosagu.id",
	"https://www.colosagu.id",
	"http://colosagu.id",
	"http://www.colosagu.id",
}

// Proxy bawaan: loopback + jaringan privat (load balancer platform).
var defaultTrustedProxies = []string{
	"127.0.0.1/32",
	"::1/128",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
}

// =======================
// ENV LOADER
// =======================

// LoadEnv memuat .env kalau tidak sedang jalan di Railway.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "colosagu")
	v.SetDefault("PORT", "3001")
	v.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("REQUEST_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("MYSQL_HOST", "localhost")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_USER", "root")
	v.SetDefault("MYSQL_DATABASE", "colo_sagu_db")
	v.SetDefault("DB_PORT", "5432")

	v.SetDefault("MIDTRANS_IS_PRODUCTION", false)
	v.SetDefault("MIDTRANS_TIMEOUT", "5s")
	v.SetDefault("MIDTRANS_VERIFY_SIGNATURE", false)

	v.SetDefault("JWT_TTL", "12h")
	v.SetDefault("TOKEN_BLACKLIST_CLEANUP_INTERVAL", "24h")

	v.SetDefault("STATIC_DIR", "dist")
	v.SetDefault("GALLERY_DIR", "public/gallery")
	v.SetDefault("SEED_ADMIN_NAME", "Admin")
	return v
}

// Load membaca seluruh konfigurasi dari ENV (setelah LoadEnv).
func Load() *Config {
	v := newViper()

	cfg := &Config{
		AppEnv:         v.GetString("APP_ENV"),
		AppName:        v.GetString("APP_NAME"),
		Port:           v.GetString("PORT"),
		Timezone:       v.GetString("APP_TIMEZONE"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		Midtrans: MidtransConfig{
			ServerKey:       v.GetString("MIDTRANS_SERVER_KEY"),
			ClientKey:       v.GetString("MIDTRANS_CLIENT_KEY"),
			MerchantID:      v.GetString("MIDTRANS_MERCHANT_ID"),
			IsProduction:    v.GetBool("MIDTRANS_IS_PRODUCTION"),
			Timeout:         v.GetDuration("MIDTRANS_TIMEOUT"),
			VerifySignature: v.GetBool("MIDTRANS_VERIFY_SIGNATURE"),
		},
		JWT: JWTConfig{
			Secret:           v.GetString("JWT_SECRET"),
			TTL:              v.GetDuration("JWT_TTL"),
			BlacklistCleanup: v.GetDuration("TOKEN_BLACKLIST_CLEANUP_INTERVAL"),
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
			AdminName:     v.GetString("SEED_ADMIN_NAME"),
			EventsFile:    v.GetString("SEED_EVENTS_FILE"),
		},
		StaticDir:  v.GetString("STATIC_DIR"),
		GalleryDir: v.GetString("GALLERY_DIR"),
	}

	cfg.DB = loadDBConfig(v)
	cfg.CORSAllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = defaultAllowOrigins
	}
	cfg.TrustedProxies = splitList(v.GetString("TRUSTED_PROXIES"))
	if len(cfg.TrustedProxies) == 0 {
		cfg.TrustedProxies = defaultTrustedProxies
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("⚠️ APP_TIMEZONE %q tidak valid, fallback ke UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}
	cfg.Location = loc

	if cfg.Midtrans.Timeout <= 0 {
		cfg.Midtrans.Timeout = 5 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	if cfg.Midtrans.ServerKey == "" {
		log.Println("❌ MIDTRANS_SERVER_KEY belum diset!")
	}
	if cfg.JWT.Secret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	return cfg
}

func loadDBConfig(v *viper.Viper) DBConfig {
	db := DBConfig{
		Driver:       strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		SSLMode:      v.GetString("DB_SSLMODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}
	switch db.Driver {
	case "postgres":
		db.Host = v.GetString("DB_HOST")
		db.Port = v.GetString("DB_PORT")
		db.User = v.GetString("DB_USER")
		db.Password = v.GetString("DB_PASSWORD")
		db.Name = v.GetString("DB_NAME")
	default:
		db.Driver = "mysql"
		db.Host = v.GetString("MYSQL_HOST")
		db.Port = v.GetString("MYSQL_PORT")
		db.User = v.GetString("MYSQL_USER")
		db.Password = v.GetString("MYSQL_PASSWORD")
		db.Name = v.GetString("MYSQL_DATABASE")
	}
	return db
}

// IsProduction true kalau APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
