package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := Load()
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "colo_sagu_db", cfg.DB.Name)
	assert.Equal(t, 5*time.Second, cfg.Midtrans.Timeout)
	assert.False(t, cfg.Midtrans.VerifySignature)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.BlacklistCleanup)
	assert.Equal(t, defaultAllowOrigins, cfg.CORSAllowOrigins)
	assert.Equal(t, defaultTrustedProxies, cfg.TrustedProxies)
	assert.NotContains(t, cfg.TrustedProxies, "0.0.0.0/0")
	assert.NotNil(t, cfg.Location)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("DB_DRIVER", " Postgres ")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "colosagu")
	t.Setenv("MIDTRANS_TIMEOUT", "2s")
	t.Setenv("MIDTRANS_VERIFY_SIGNATURE", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.id , ,https://b.id")
	t.Setenv("APP_TIMEZONE", "Bukan/Zona")
	t.Setenv("TRUSTED_PROXIES", "10.1.0.0/16")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "colosagu", cfg.DB.Name)
	assert.Equal(t, 2*time.Second, cfg.Midtrans.Timeout)
	assert.True(t, cfg.Midtrans.VerifySignature)
	assert.Equal(t, []string{"https://a.id", "https://b.id"}, cfg.CORSAllowOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, []string{"10.1.0.0/16"}, cfg.TrustedProxies)
}
