package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colosagu_backend/internals/configs"
)

func TestPostgresDSN_PinsSessionTimeZone(t *testing.T) {
	dsn := PostgresDSN(configs.DBConfig{
		Host: "db.internal", Port: "5432", User: "colo", Password: "p@ss:w/rd",
		Name: "colosagu", SSLMode: "require",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:5432", u.Host)
	assert.Equal(t, "/colosagu", u.Path)

	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss:w/rd", pass)

	q := u.Query()
	assert.Equal(t, "require", q.Get("sslmode"))
	assert.Contains(t, q.Get("options"), "-c TimeZone=UTC")
	assert.Contains(t, q.Get("options"), "-c statement_timeout=3000")
}

func TestMySQLDSN_UTC(t *testing.T) {
	dsn := MySQLDSN(configs.DBConfig{Host: "localhost", Port: "3306", User: "root", Name: "colo_sagu_db"})
	assert.Equal(t, "root:@tcp(localhost:3306)/colo_sagu_db?charset=utf8mb4&parseTime=true&loc=UTC", dsn)
}
