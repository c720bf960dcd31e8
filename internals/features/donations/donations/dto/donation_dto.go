package dto

import (
	"math"
	"strconv"
	"strings"
)

// ===================== Donate =====================

type CreateDonationRequest struct {
	Name string `json:"name"`
	// angka atau string angka; divalidasi oleh ParseAmount
	Amount any `json:"amount"`
}

// ParseAmount menerima bilangan bulat positif (JSON number atau string).
func (r *CreateDonationRequest) ParseAmount() (int64, bool) {
	switch v := r.Amount.(type) {
	case float64:
		if v <= 0 || v != math.Trunc(v) || v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, v > 0
	case int:
		return int64(v), v > 0
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

type CreateDonationResponse struct {
	SnapToken   string `json:"snapToken"`
	OrderID     string `json:"orderId"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

// ===================== Status =====================

type TotalDonationsResponse struct {
	Total int64 `json:"total"`
}

type CheckTransactionRequest struct {
	OrderID      string `json:"order_id"`
	ManualStatus string `json:"manual_status"`
}

type CheckTransactionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DonationStatusResponse struct {
	Status  string `json:"status"`
	Updated bool   `json:"updated"`
	Message string `json:"message"`
}

// ===================== Webhook =====================

// MidtransNotification payload HTTP notification Midtrans (field lain diabaikan).
type MidtransNotification struct {
	TransactionTime   string `json:"transaction_time" form:"transaction_time"`
	TransactionStatus string `json:"transaction_status" form:"transaction_status"`
	TransactionID     string `json:"transaction_id" form:"transaction_id"`
	StatusCode        string `json:"status_code" form:"status_code"`
	SignatureKey      string `json:"signature_key" form:"signature_key"`
	OrderID           string `json:"order_id" form:"order_id"`
	GrossAmount       string `json:"gross_amount" form:"gross_amount"`
	PaymentType       string `json:"payment_type" form:"payment_type"`
	FraudStatus       string `json:"fraud_status" form:"fraud_status"`
}

func (n *MidtransNotification) Normalize() {
	n.OrderID = strings.TrimSpace(n.OrderID)
	n.TransactionStatus = strings.TrimSpace(n.TransactionStatus)
}

// ===================== Frontend config =====================

type MidtransConfigResponse struct {
	ClientKey     string `json:"clientKey"`
	IsProduction  bool   `json:"isProduction"`
	SnapScriptURL string `json:"snapScriptUrl"`
}
