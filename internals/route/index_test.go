package routes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	database "colosagu_backend/internals/databases"
	donationModel "colosagu_backend/internals/features/donations/donations/model"
	"colosagu_backend/internals/features/donations/donations/service"
	eventModel "colosagu_backend/internals/features/donations/events/model"
	authService "colosagu_backend/internals/features/users/auth/service"
	userModel "colosagu_backend/internals/features/users/user/model"
	helpersAuth "colosagu_backend/internals/helpers/auth"
	"colosagu_backend/internals/helpers/dbtime"
	"colosagu_backend/internals/testutil"
)

const (
	testServerKey = "SB-Mid-server-test"
	testSecret    = "test-secret"
)

type stubGateway struct {
	mu          sync.Mutex
	seq         int
	status      string
	statusErr   error
	statusCalls int
}

func (g *stubGateway) CreateSession(_ context.Context, req service.SessionRequest) (*service.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return &service.Session{Token: "snap-token", RedirectURL: "https://snap.test/" + req.OrderID}, nil
}

func (g *stubGateway) TransactionStatus(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statusCalls++
	return g.status, g.statusErr
}

type harness struct {
	app *fiber.App
	db  *gorm.DB
	cfg *configs.Config
	gw  *stubGateway
}

func newHarness(t *testing.T, mutate ...func(*configs.Config)) *harness {
	t.Helper()
	cfg := &configs.Config{
		AppEnv:         "test",
		AppName:        "colosagu",
		Timezone:       "UTC",
		Location:       time.UTC,
		RequestTimeout: 5 * time.Second,
		Midtrans: configs.MidtransConfig{
			ServerKey: testServerKey,
			ClientKey: "SB-Mid-client-test",
			Timeout:   time.Second,
		},
		JWT:              configs.JWTConfig{Secret: testSecret, TTL: time.Hour},
		CORSAllowOrigins: []string{"*"},
		StaticDir:        t.TempDir(),
		GalleryDir:       t.TempDir(),
	}
	for _, m := range mutate {
		m(cfg)
	}

	db := testutil.NewTestDB(t, database.Models()...)
	gw := &stubGateway{status: "pending"}
	app := NewApp(Deps{DB: db, Config: cfg, Log: zap.NewNop(), Gateway: gw})
	return &harness{app: app, db: db, cfg: cfg, gw: gw}
}

func (h *harness) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(raw, &v), string(raw))
	return v
}

func (h *harness) activeEventAroundToday(t *testing.T, name string) *eventModel.DonationEvent {
	t.Helper()
	today := dbtime.Today(time.Now(), time.UTC)
	ev := &eventModel.DonationEvent{
		Name:      name,
		StartDate: today.AddDate(0, 0, -1),
		EndDate:   today.AddDate(0, 0, 30),
		IsActive:  true,
	}
	require.NoError(t, h.db.Create(ev).Error)
	return ev
}

func (h *harness) adminToken(t *testing.T) string {
	t.Helper()
	hashed, err := authService.HashPassword("rahasia123")
	require.NoError(t, err)
	u := userModel.UserModel{Email: "admin@colosagu.id", Name: "Admin", Password: hashed}
	require.NoError(t, h.db.Create(&u).Error)

	tok, _, err := helpersAuth.IssueAccessToken(testSecret, u.ID, u.Email, u.Name, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

func notification(orderID, status string) map[string]string {
	return map[string]string{
		"order_id":           orderID,
		"transaction_status": status,
		"status_code":        "200",
		"gross_amount":       "50000.00",
		"fraud_status":       "accept",
		"signature_key":      service.MidtransSignature(orderID, "200", "50000.00", testServerKey),
	}
}

/* =========================================================
   Donation flow
========================================================= */

func TestDonationFlow_WebhookSettlement(t *testing.T) {
	h := newHarness(t)
	ev := h.activeEventAroundToday(t, "Colo Sagu")
	admin := h.adminToken(t)

	code, body := h.do(t, http.MethodPost, "/api/donate", fiber.Map{"name": "Budi", "amount": 50000}, "")
	require.Equal(t, http.StatusOK, code, string(body))
	created := decode[map[string]any](t, body)
	assert.Equal(t, "snap-token", created["snapToken"])
	orderID, _ := created["orderId"].(string)
	require.NotEmpty(t, orderID)

	code, body = h.do(t, http.MethodGet, "/api/total-donations", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, decode[map[string]any](t, body)["total"])

	code, body = h.do(t, http.MethodPost, "/api/midtrans-callback", notification(orderID, "settlement"), "")
	require.Equal(t, http.StatusOK, code, string(body))
	assert.Equal(t, "OK", decode[map[string]any](t, body)["message"])

	code, body = h.do(t, http.MethodGet, "/api/total-donations", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 50000, decode[map[string]any](t, body)["total"])

	// polling setelah final tidak menghubungi gateway
	code, body = h.do(t, http.MethodGet, "/api/donation-status/"+orderID, nil, "")
	require.Equal(t, http.StatusOK, code)
	st := decode[map[string]any](t, body)
	assert.Equal(t, "settlement", st["status"])
	assert.Equal(t, false, st["updated"])
	assert.Zero(t, h.gw.statusCalls)

	// notifikasi terlambat tidak menurunkan status
	code, _ = h.do(t, http.MethodPost, "/api/midtrans-callback", notification(orderID, "expire"), "")
	require.Equal(t, http.StatusOK, code)

	code, body = h.do(t, http.MethodGet, "/api/donations", nil, "")
	require.Equal(t, http.StatusOK, code)
	rows := decode[[]map[string]any](t, body)
	require.Len(t, rows, 1)
	assert.Equal(t, orderID, rows[0]["order_id"])
	assert.Equal(t, "settlement", rows[0]["status"])
	assert.Equal(t, ev.Name, rows[0]["event_name"])

	// audit
	code, body = h.do(t, http.MethodGet, "/api/donations/"+orderID+"/gateway-events", nil, admin)
	require.Equal(t, http.StatusOK, code, string(body))
	audit := decode[struct {
		Data []struct {
			TransactionStatus string `json:"transaction_status"`
			Result            string `json:"result"`
			SignatureValid    bool   `json:"signature_valid"`
		} `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}](t, body)
	assert.EqualValues(t, 2, audit.Pagination.Total)
	require.Len(t, audit.Data, 2)
	results := []string{audit.Data[0].Result, audit.Data[1].Result}
	assert.ElementsMatch(t, []string{donationModel.GatewayResultApplied, donationModel.GatewayResultUnchanged}, results)
	assert.True(t, audit.Data[0].SignatureValid)
}

func TestDonate_Validation(t *testing.T) {
	h := newHarness(t)

	code, body := h.do(t, http.MethodPost, "/api/donate", fiber.Map{"name": "Budi", "amount": "abc"}, "")
	assert.Equal(t, http.StatusBadRequest, code, string(body))

	code, _ = h.do(t, http.MethodPost, "/api/donate", fiber.Map{"amount": 0}, "")
	assert.Equal(t, http.StatusBadRequest, code)

	// belum ada event aktif
	code, body = h.do(t, http.MethodPost, "/api/donate", fiber.Map{"amount": 1000}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(body), service.ErrNoActiveEvent.Error())

	var n int64
	require.NoError(t, h.db.Model(&donationModel.Donation{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDonate_RecordFailureReturns500(t *testing.T) {
	h := newHarness(t)
	h.activeEventAroundToday(t, "Colo Sagu")

	require.NoError(t, h.db.Callback().Create().Before("gorm:create").Register("test:fail_donation_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "donations" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	code, body := h.do(t, http.MethodPost, "/api/donate", fiber.Map{"name": "Budi", "amount": 50000}, "")
	require.Equal(t, http.StatusInternalServerError, code, string(body))
	res := decode[map[string]any](t, body)
	assert.Equal(t, service.ErrRecordDonation.Error(), res["error"])
	assert.Contains(t, res["detail"], "disk full")
	assert.Equal(t, 1, h.gw.seq)

	var n int64
	require.NoError(t, h.db.Model(&donationModel.Donation{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCallback_UnknownOrder(t *testing.T) {
	h := newHarness(t)

	code, _ := h.do(t, http.MethodPost, "/api/midtrans-callback", notification("order-missing", "settlement"), "")
	assert.Equal(t, http.StatusNotFound, code)

	var ev donationModel.DonationGatewayEvent
	require.NoError(t, h.db.Where("order_id = ?", "order-missing").Take(&ev).Error)
	assert.Equal(t, donationModel.GatewayResultNotFound, ev.Result)
}

func TestCallback_MissingFields(t *testing.T) {
	h := newHarness(t)

	code, _ := h.do(t, http.MethodPost, "/api/midtrans-callback", fiber.Map{"transaction_status": "settlement"}, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = h.do(t, http.MethodPost, "/api/midtrans-callback", fiber.Map{"order_id": "order-1"}, "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCallback_SignatureEnforced(t *testing.T) {
	h := newHarness(t, func(c *configs.Config) { c.Midtrans.VerifySignature = true })
	require.NoError(t, h.db.Create(&donationModel.Donation{
		OrderID: "order-sig", Name: "Donatur", Amount: 50000, Status: donationModel.StatusPending,
	}).Error)

	forged := notification("order-sig", "settlement")
	forged["signature_key"] = "deadbeef"
	code, _ := h.do(t, http.MethodPost, "/api/midtrans-callback", forged, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	var d donationModel.Donation
	require.NoError(t, h.db.Where("order_id = ?", "order-sig").Take(&d).Error)
	assert.Equal(t, donationModel.StatusPending, d.Status)

	code, _ = h.do(t, http.MethodPost, "/api/midtrans-callback", notification("order-sig", "settlement"), "")
	assert.Equal(t, http.StatusOK, code)
}

func TestCheckTransaction(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.db.Create(&donationModel.Donation{
		OrderID: "order-ct", Name: "Donatur", Amount: 1000, Status: donationModel.StatusPending,
	}).Error)

	code, _ := h.do(t, http.MethodPost, "/api/check-transaction", fiber.Map{}, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = h.do(t, http.MethodPost, "/api/check-transaction", fiber.Map{"order_id": "nope"}, "")
	assert.Equal(t, http.StatusNotFound, code)

	// gateway belum kenal transaksi: tetap pending
	h.gw.statusErr = service.ErrGatewayTransactionNotFound
	code, body := h.do(t, http.MethodPost, "/api/check-transaction", fiber.Map{"order_id": "order-ct"}, "")
	require.Equal(t, http.StatusOK, code, string(body))
	assert.Equal(t, "pending", decode[map[string]any](t, body)["status"])

	h.gw.statusErr = nil
	code, body = h.do(t, http.MethodPost, "/api/check-transaction",
		fiber.Map{"order_id": "order-ct", "manual_status": "settlement"}, "")
	require.Equal(t, http.StatusOK, code)
	res := decode[map[string]any](t, body)
	assert.Equal(t, "settlement", res["status"])
	assert.Equal(t, "Status updated to settlement", res["message"])
}

func TestMidtransConfig(t *testing.T) {
	h := newHarness(t)
	code, body := h.do(t, http.MethodGet, "/api/midtrans-config", nil, "")
	require.Equal(t, http.StatusOK, code)
	res := decode[map[string]any](t, body)
	assert.Equal(t, "SB-Mid-client-test", res["clientKey"])
	assert.Equal(t, false, res["isProduction"])
	assert.NotContains(t, string(body), testServerKey)
}

/* =========================================================
   Events + auth
========================================================= */

func TestEvents_AdminAndOverlap(t *testing.T) {
	h := newHarness(t)
	payload := fiber.Map{"name": "Sagu 2026", "start_date": "2026-01-01", "end_date": "2026-06-30", "is_active": true}

	code, _ := h.do(t, http.MethodPost, "/api/events", payload, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	admin := h.adminToken(t)
	code, body := h.do(t, http.MethodPost, "/api/events", payload, admin)
	require.Equal(t, http.StatusCreated, code, string(body))

	clash := fiber.Map{"name": "Bentrok", "start_date": "2026-06-01", "end_date": "2026-07-31", "is_active": true}
	code, _ = h.do(t, http.MethodPost, "/api/events", clash, admin)
	assert.Equal(t, http.StatusConflict, code)

	// nonaktif boleh beririsan
	clash["is_active"] = false
	code, _ = h.do(t, http.MethodPost, "/api/events", clash, admin)
	assert.Equal(t, http.StatusCreated, code)

	bad := fiber.Map{"name": "Terbalik", "start_date": "2026-08-01", "end_date": "2026-07-01"}
	code, _ = h.do(t, http.MethodPost, "/api/events", bad, admin)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = h.do(t, http.MethodGet, "/api/events", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]map[string]any](t, body), 2)
}

func TestActiveEvent(t *testing.T) {
	h := newHarness(t)

	code, _ := h.do(t, http.MethodGet, "/api/active-event", nil, "")
	assert.Equal(t, http.StatusNotFound, code)

	ev := h.activeEventAroundToday(t, "Sekarang")
	code, body := h.do(t, http.MethodGet, "/api/active-event", nil, "")
	require.Equal(t, http.StatusOK, code)
	res := decode[map[string]any](t, body)
	assert.Equal(t, ev.Name, res["name"])
	assert.Equal(t, dbtime.FormatDate(ev.StartDate), res["start_date"])
}

func TestLoginLogoutRevokesToken(t *testing.T) {
	h := newHarness(t)
	h.adminToken(t)

	code, _ := h.do(t, http.MethodPost, "/api/login", fiber.Map{"email": "admin@colosagu.id", "password": "salah"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := h.do(t, http.MethodPost, "/api/login", fiber.Map{"email": "admin@colosagu.id", "password": "rahasia123"}, "")
	require.Equal(t, http.StatusOK, code, string(body))
	login := decode[struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}](t, body)
	require.True(t, login.Success)
	require.NotEmpty(t, login.Token)

	code, _ = h.do(t, http.MethodGet, "/api/me", nil, login.Token)
	assert.Equal(t, http.StatusOK, code)

	code, _ = h.do(t, http.MethodPost, "/api/logout", nil, login.Token)
	assert.Equal(t, http.StatusOK, code)

	code, body = h.do(t, http.MethodGet, "/api/me", nil, login.Token)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Contains(t, string(body), "blacklisted")
}

/* =========================================================
   Base
========================================================= */

func TestHealthAndNotFound(t *testing.T) {
	h := newHarness(t)

	code, body := h.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", decode[map[string]any](t, body)["status"])

	code, body = h.do(t, http.MethodGet, "/api/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), "NOT_FOUND")
}
