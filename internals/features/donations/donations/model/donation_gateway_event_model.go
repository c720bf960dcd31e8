package model

import (
	"time"

	"gorm.io/datatypes"
)

// Hasil pemrosesan notifikasi gateway
const (
	GatewayResultApplied   = "applied"
	GatewayResultUnchanged = "unchanged"
	GatewayResultNotFound  = "not_found"
	GatewayResultRejected  = "rejected"
	GatewayResultError     = "error"
)

// DonationGatewayEvent log mentah setiap webhook yang masuk (audit).
type DonationGatewayEvent struct {
	ID                uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Provider          string         `gorm:"column:provider;type:varchar(32);not null;default:midtrans" json:"provider"`
	OrderID           string         `gorm:"column:order_id;type:varchar(64);index" json:"order_id"`
	TransactionStatus string         `gorm:"column:transaction_status;type:varchar(32)" json:"transaction_status"`
	FraudStatus       string         `gorm:"column:fraud_status;type:varchar(32)" json:"fraud_status,omitempty"`
	TransactionID     string         `gorm:"column:transaction_id;type:varchar(64)" json:"transaction_id,omitempty"`
	Payload           datatypes.JSON `gorm:"column:payload" json:"payload"`
	SignatureValid    bool           `gorm:"column:signature_valid;not null;default:false" json:"signature_valid"`
	Result            string         `gorm:"column:result;type:varchar(16);not null" json:"result"`
	Error             *string        `gorm:"column:error" json:"error,omitempty"`
	ReceivedAt        time.Time      `gorm:"column:received_at;not null;index" json:"received_at"`
}

func (DonationGatewayEvent) TableName() string { return "donation_gateway_events" }
