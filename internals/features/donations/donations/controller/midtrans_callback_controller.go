package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"colosagu_backend/internals/features/donations/donations/dto"
	"colosagu_backend/internals/features/donations/donations/model"
	"colosagu_backend/internals/features/donations/donations/service"
	helper "colosagu_backend/internals/helpers"
)

// POST /api/midtrans-callback: HTTP notification dari Midtrans.
// Harus cepat: hanya rekonsiliasi status + catat audit.
func (ctl *DonationController) MidtransCallback(c *fiber.Ctx) error {
	raw := append([]byte(nil), c.Body()...)

	var n dto.MidtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	n.Normalize()
	if n.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id required")
	}

	ctl.Log.Info("[MIDTRANS CALLBACK]",
		zap.String("order_id", n.OrderID),
		zap.String("transaction_status", n.TransactionStatus))

	sigValid := n.SignatureKey != "" &&
		service.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, ctl.Midtrans.ServerKey, n.SignatureKey)
	if ctl.Midtrans.VerifySignature && !sigValid {
		ctl.audit(c, raw, &n, false, model.GatewayResultRejected, "invalid signature")
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	if n.TransactionStatus == "" {
		ctl.audit(c, raw, &n, sigValid, model.GatewayResultRejected, service.ErrStatusRequired.Error())
		return ctl.fail(c, service.ErrStatusRequired)
	}

	tr, err := ctl.Manager.ApplyGatewayStatus(c.UserContext(), n.OrderID, n.TransactionStatus)
	if err != nil {
		result := model.GatewayResultError
		if errors.Is(err, service.ErrOrderNotFound) {
			result = model.GatewayResultNotFound
		}
		ctl.audit(c, raw, &n, sigValid, result, err.Error())
		return ctl.fail(c, err)
	}

	result := model.GatewayResultUnchanged
	if tr.Updated {
		result = model.GatewayResultApplied
	}
	ctl.audit(c, raw, &n, sigValid, result, "")

	return c.JSON(fiber.Map{"message": "OK"})
}
