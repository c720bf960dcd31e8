package helper

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAccessToken(t *testing.T) {
	now := time.Now()
	tok, exp, err := IssueAccessToken("s3cret", 7, "admin@colosagu.id", "Admin", time.Hour, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := ParseAccessToken("s3cret", tok)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "admin@colosagu.id", claims.Email)

	_, err = ParseAccessToken("lain", tok)
	assert.Error(t, err)

	expired, _, err := IssueAccessToken("s3cret", 7, "a@b.c", "A", time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = ParseAccessToken("s3cret", expired)
	assert.Error(t, err)

	_, _, err = IssueAccessToken("", 1, "a@b.c", "A", time.Hour, now)
	assert.Error(t, err)
}

func TestAccessClaimsUserID_Invalid(t *testing.T) {
	for _, sub := range []string{"", "0", "abc"} {
		c := &AccessClaims{}
		c.Subject = sub
		_, err := c.UserID()
		assert.Error(t, err, sub)
	}
}

func TestExtractAccessToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "case insensitive", header: "bearer   abc.def", want: "abc.def"},
		{name: "quoted", header: `Bearer "abc.def"`, want: "abc.def"},
		{name: "cookie fallback", cookie: "from-cookie", want: "from-cookie"},
		{name: "header wins", header: "Bearer h", cookie: "c", want: "h"},
		{name: "missing", wantErr: true},
		{name: "wrong scheme", header: "Basic xyz", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				got    string
				gotErr error
			)
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got, gotErr = ExtractAccessToken(c)
				return nil
			})
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.Header.Set("Cookie", "access_token="+tc.cookie)
			}
			_, err := app.Test(req, -1)
			require.NoError(t, err)

			if tc.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenFingerprint(t *testing.T) {
	a := TokenFingerprint("token-a")
	assert.Len(t, a, 64)
	assert.Equal(t, a, TokenFingerprint("token-a"))
	assert.NotEqual(t, a, TokenFingerprint("token-b"))
}
