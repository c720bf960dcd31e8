package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	"colosagu_backend/internals/features/donations/donations/dto"
	"colosagu_backend/internals/features/donations/donations/model"
	"colosagu_backend/internals/features/donations/donations/repository"
	"colosagu_backend/internals/features/donations/donations/service"
	eventRepo "colosagu_backend/internals/features/donations/events/repository"
	helper "colosagu_backend/internals/helpers"
)

type DonationController struct {
	Manager       *service.Manager
	GatewayEvents *repository.GatewayEventRepository
	Midtrans      configs.MidtransConfig
	Log           *zap.Logger
	Now           func() time.Time
}

func NewDonationController(db *gorm.DB, cfg *configs.Config, gw service.Gateway, log *zap.Logger) *DonationController {
	mgr := service.NewManager(
		repository.NewDonationRepository(db),
		eventRepo.NewDonationEventRepository(db),
		gw,
		service.Options{Location: cfg.Location, Logger: log},
	)
	return &DonationController{
		Manager:       mgr,
		GatewayEvents: repository.NewGatewayEventRepository(db),
		Midtrans:      cfg.Midtrans,
		Log:           log.Named("donation_http"),
		Now:           time.Now,
	}
}

// 🟢 POST /api/donate: buat donasi pending + snap token
func (ctl *DonationController) CreateDonation(c *fiber.Ctx) error {
	var body dto.CreateDonationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	amount, ok := body.ParseAmount()
	if !ok {
		return ctl.fail(c, service.ErrInvalidAmount)
	}

	res, err := ctl.Manager.CreateSession(c.UserContext(), service.CreateSessionInput{
		Name:   body.Name,
		Amount: amount,
	})
	if err != nil {
		return ctl.fail(c, err)
	}
	return c.JSON(dto.CreateDonationResponse{
		SnapToken:   res.SnapToken,
		OrderID:     res.OrderID,
		RedirectURL: res.RedirectURL,
	})
}

// GET /api/donations: semua donasi, terbaru dulu, dengan event_name
func (ctl *DonationController) ListDonations(c *fiber.Ctx) error {
	rows, err := ctl.Manager.ListDonations(c.UserContext())
	if err != nil {
		return ctl.fail(c, err)
	}
	return c.JSON(rows)
}

// GET /api/total-donations
func (ctl *DonationController) TotalDonations(c *fiber.Ctx) error {
	total, err := ctl.Manager.TotalForCurrentEvent(c.UserContext())
	if err != nil {
		return ctl.fail(c, err)
	}
	return c.JSON(dto.TotalDonationsResponse{Total: total})
}

// POST /api/check-transaction: konfirmasi dari browser (manual_status) atau cek ke gateway
func (ctl *DonationController) CheckTransaction(c *fiber.Ctx) error {
	var body dto.CheckTransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	tr, err := ctl.Manager.ConfirmTransaction(c.UserContext(), body.OrderID, body.ManualStatus)
	if err != nil {
		return ctl.fail(c, err)
	}
	return c.JSON(dto.CheckTransactionResponse{
		Status:  tr.Status,
		Message: transitionMessage(tr),
	})
}

// GET /api/donation-status/:order_id: polling
func (ctl *DonationController) DonationStatus(c *fiber.Ctx) error {
	tr, err := ctl.Manager.PollStatus(c.UserContext(), c.Params("order_id"))
	if err != nil {
		return ctl.fail(c, err)
	}
	return c.JSON(dto.DonationStatusResponse{
		Status:  tr.Status,
		Updated: tr.Updated,
		Message: transitionMessage(tr),
	})
}

// GET /api/midtrans-config: kunci publik untuk loader Snap di frontend
func (ctl *DonationController) MidtransConfig(c *fiber.Ctx) error {
	return c.JSON(dto.MidtransConfigResponse{
		ClientKey:     ctl.Midtrans.ClientKey,
		IsProduction:  ctl.Midtrans.IsProduction,
		SnapScriptURL: service.SnapScriptURL(ctl.Midtrans.IsProduction),
	})
}

var gatewayEventSorts = map[string]string{
	"received_at": "received_at",
	"id":          "id",
}

// GET /api/donations/:order_id/gateway-events (admin): ?page ?per_page ?sort_by ?order
func (ctl *DonationController) ListGatewayEvents(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "received_at", "desc", helper.AdminPageOpts)
	orderBy, err := p.OrderColumn(gatewayEventSorts, "received_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, total, err := ctl.GatewayEvents.ListByOrderID(c.UserContext(), c.Params("order_id"), orderBy, p.Limit(), p.Offset())
	if err != nil {
		ctl.Log.Error("[DB] list gateway events", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonList(c, rows, helper.BuildPageMeta(total, p))
}

/* =======================================================================
   Helpers
======================================================================= */

func transitionMessage(tr *service.Transition) string {
	if tr.Updated {
		return fmt.Sprintf("Status updated to %s", tr.Status)
	}
	return fmt.Sprintf("Status unchanged (%s)", tr.Status)
}

// fail memetakan error service ke HTTP response.
func (ctl *DonationController) fail(c *fiber.Ctx, err error) error {
	var ge *service.GatewayError
	switch {
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrOrderIDRequired),
		errors.Is(err, service.ErrStatusRequired),
		errors.Is(err, service.ErrNoActiveEvent):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Order not found")
	case errors.As(err, &ge):
		return helper.JsonErrorDetail(c, fiber.StatusBadGateway, ge.Op, ge.Detail)
	case errors.Is(err, service.ErrRecordDonation):
		return helper.JsonErrorDetail(c, fiber.StatusInternalServerError, service.ErrRecordDonation.Error(), err.Error())
	default:
		ctl.Log.Error("internal error", zap.String("path", c.OriginalURL()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

/* =======================================================================
   Audit webhook
======================================================================= */

func (ctl *DonationController) audit(c *fiber.Ctx, raw []byte, n *dto.MidtransNotification, sigValid bool, result string, errMsg string) {
	payload := raw
	if !sonic.Valid(payload) {
		// body form-encoded: simpan hasil parse saja
		payload, _ = sonic.Marshal(n)
	}
	ev := &model.DonationGatewayEvent{
		Provider:          "midtrans",
		OrderID:           n.OrderID,
		TransactionStatus: n.TransactionStatus,
		FraudStatus:       n.FraudStatus,
		TransactionID:     n.TransactionID,
		Payload:           datatypes.JSON(payload),
		SignatureValid:    sigValid,
		Result:            result,
		ReceivedAt:        ctl.Now().UTC(),
	}
	if errMsg != "" {
		ev.Error = &errMsg
	}
	if err := ctl.GatewayEvents.Create(c.UserContext(), ev); err != nil {
		ctl.Log.Warn("gateway event log failed", zap.String("order_id", n.OrderID), zap.Error(err))
	}
}
