package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"colosagu_backend/internals/configs"
)

/* =========================================================
   Gateway contract
========================================================= */

// SessionRequest data minimal untuk membuka sesi Snap.
type SessionRequest struct {
	OrderID   string
	Amount    int64
	DonorName string
}

// Session hasil CreateSession.
type Session struct {
	Token       string
	RedirectURL string
}

// Gateway abstraksi payment gateway yang dipakai Manager.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	// TransactionStatus mengembalikan transaction_status mentah dari gateway.
	// ErrGatewayTransactionNotFound kalau gateway belum mengenal order tsb.
	TransactionStatus(ctx context.Context, orderID string) (string, error)
}

// ErrGatewayTransactionNotFound: order belum punya transaksi di gateway
// (donatur belum memilih metode bayar di Snap).
var ErrGatewayTransactionNotFound = errors.New("transaction not found at gateway")

const (
	donationItemID   = "DONATION"
	donationItemName = "Donasi Sagu"

	snapScriptSandbox    = "https://app.sandbox.midtrans.com/snap/snap.js"
	snapScriptProduction = "https://app.midtrans.com/snap/snap.js"
)

/* =========================================================
   Midtrans Client
========================================================= */

type MidtransGateway struct {
	snap snap.Client
	core coreapi.Client
}

// NewMidtransGateway membuat client Snap + Core API dengan timeout HTTP terbatas.
func NewMidtransGateway(cfg configs.MidtransConfig) *MidtransGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	g := &MidtransGateway{}
	g.snap.New(cfg.ServerKey, env)
	g.core.New(cfg.ServerKey, env)

	// client per gateway; midtrans.DefaultGoHttpClient global tidak disentuh
	g.snap.HttpClient = newMidtransHTTPClient(env, timeout)
	g.core.HttpClient = newMidtransHTTPClient(env, timeout)
	return g
}

func newMidtransHTTPClient(env midtrans.EnvironmentType, timeout time.Duration) *midtrans.HttpClientImplementation {
	return &midtrans.HttpClientImplementation{
		HttpClient: &http.Client{Timeout: timeout},
		Logger:     midtrans.GetDefaultLogger(env),
	}
}

// SnapScriptURL URL snap.js sesuai environment.
func SnapScriptURL(isProduction bool) string {
	if isProduction {
		return snapScriptProduction
	}
	return snapScriptSandbox
}

func (g *MidtransGateway) CreateSession(ctx context.Context, in SessionRequest) (*Session, error) {
	if in.Amount <= 0 {
		return nil, errors.New("invalid amount")
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return nil, errors.New("order_id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: in.Amount,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    donationItemID,
			Price: in.Amount,
			Qty:   1,
			Name:  donationItemName,
		}},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: defaultString(in.DonorName, DefaultDonorName),
		},
	}

	type result struct {
		resp *snap.Response
		err  *midtrans.Error
	}
	ch := make(chan result, 1)
	go func() {
		resp, mErr := g.snap.CreateTransaction(req)
		ch <- result{resp, mErr}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		// cek *midtrans.Error langsung, jangan lewat interface error (typed nil)
		if r.err != nil {
			return nil, r.err
		}
		if r.resp == nil || r.resp.Token == "" {
			return nil, errors.New("empty snap token")
		}
		return &Session{Token: r.resp.Token, RedirectURL: r.resp.RedirectURL}, nil
	}
}

func (g *MidtransGateway) TransactionStatus(ctx context.Context, orderID string) (string, error) {
	type result struct {
		resp *coreapi.TransactionStatusResponse
		err  *midtrans.Error
	}
	ch := make(chan result, 1)
	go func() {
		resp, mErr := g.core.CheckTransaction(orderID)
		ch <- result{resp, mErr}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			if r.err.StatusCode == http.StatusNotFound {
				return "", ErrGatewayTransactionNotFound
			}
			return "", r.err
		}
		if r.resp == nil {
			return "", errors.New("empty status response")
		}
		// status API kadang membalas HTTP 200 dengan status_code "404" di body
		if r.resp.StatusCode == "404" {
			return "", ErrGatewayTransactionNotFound
		}
		if r.resp.TransactionStatus == "" {
			return "", fmt.Errorf("status response without transaction_status (status_code=%s)", r.resp.StatusCode)
		}
		return r.resp.TransactionStatus, nil
	}
}

/* =========================================================
   Utils
========================================================= */

func defaultString(s string, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
