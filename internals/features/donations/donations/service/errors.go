package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
)

var (
	ErrInvalidAmount   = errors.New("amount required (positive integer)")
	ErrNoActiveEvent   = errors.New("tidak ada event donasi aktif")
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderIDRequired = errors.New("order_id required")
	ErrStatusRequired  = errors.New("transaction_status required")
	ErrRecordDonation  = errors.New("gagal menyimpan donasi ke database")
)

const (
	OpCreateSession = "payment session creation failed"
	OpQueryStatus   = "transaction status query failed"
)

// GatewayError kegagalan upstream; Detail berisi pesan asli dari gateway.
type GatewayError struct {
	Op         string
	Detail     string
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Detail == "" {
		return e.Op
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *GatewayError) Unwrap() error { return e.Err }

func newGatewayError(op string, err error) *GatewayError {
	ge := &GatewayError{Op: op, Err: err}
	if err != nil {
		ge.Detail = err.Error()
	}
	var me *midtrans.Error
	if errors.As(err, &me) {
		ge.StatusCode = me.StatusCode
		if me.Message != "" {
			ge.Detail = me.Message
		}
	}
	return ge
}
