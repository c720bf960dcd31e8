package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/donations/donations/model"
	eventModel "colosagu_backend/internals/features/donations/events/model"
	"colosagu_backend/internals/helpers/dbtime"
)

const DefaultDonorName = "Donatur"

/* =========================================================
   Dependencies
========================================================= */

type DonationStore interface {
	Create(ctx context.Context, d *model.Donation) error
	FindByOrderID(ctx context.Context, orderID string) (*model.Donation, error)
	TransitionStatus(ctx context.Context, orderID, status string) (bool, error)
	SumSettledByEvent(ctx context.Context, eventID uint) (int64, error)
	ListWithEvent(ctx context.Context) ([]model.DonationRow, error)
}

type EventStore interface {
	FindCurrent(ctx context.Context, today time.Time) (*eventModel.DonationEvent, error)
}

type Options struct {
	// Location zona untuk menentukan "hari ini" (nil → UTC)
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

// Manager mengelola siklus hidup donasi: pembuatan sesi pembayaran dan
// rekonsiliasi status dari webhook, konfirmasi klien, dan polling.
type Manager struct {
	donations DonationStore
	events    EventStore
	gateway   Gateway
	loc       *time.Location
	now       func() time.Time
	log       *zap.Logger
}

func NewManager(donations DonationStore, events EventStore, gw Gateway, opt Options) *Manager {
	m := &Manager{
		donations: donations,
		events:    events,
		gateway:   gw,
		loc:       opt.Location,
		now:       opt.Now,
		log:       opt.Logger,
	}
	if m.loc == nil {
		m.loc = time.UTC
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	m.log = m.log.Named("donation")
	return m
}

/* =========================================================
   Session creation
========================================================= */

type CreateSessionInput struct {
	Name   string
	Amount int64
}

type SessionResult struct {
	SnapToken   string
	OrderID     string
	RedirectURL string
	EventID     uint
}

// CreateSession: validasi → event aktif → order id → token gateway → simpan pending.
// Gagal di gateway tidak menulis apa pun.
func (m *Manager) CreateSession(ctx context.Context, in CreateSessionInput) (*SessionResult, error) {
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultDonorName
	}

	ev, err := m.currentEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve active event: %w", err)
	}
	if ev == nil {
		return nil, ErrNoActiveEvent
	}

	orderID := GenOrderID(m.now())
	sess, err := m.gateway.CreateSession(ctx, SessionRequest{
		OrderID:   orderID,
		Amount:    in.Amount,
		DonorName: name,
	})
	if err != nil {
		m.log.Error("[MIDTRANS] create transaction", zap.String("order_id", orderID), zap.Error(err))
		return nil, newGatewayError(OpCreateSession, err)
	}

	eventID := ev.ID
	d := &model.Donation{
		OrderID:   orderID,
		Name:      name,
		Amount:    in.Amount,
		Status:    model.StatusPending,
		SnapToken: sess.Token,
		EventID:   &eventID,
	}
	if err := m.donations.Create(ctx, d); err != nil {
		// token sudah terbit di gateway; dibiarkan kedaluwarsa sendiri
		m.log.Error("[DB] insert donation", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRecordDonation, err)
	}

	m.log.Info("donation created",
		zap.String("order_id", orderID),
		zap.Int64("amount", in.Amount),
		zap.Uint("event_id", eventID))

	return &SessionResult{
		SnapToken:   sess.Token,
		OrderID:     orderID,
		RedirectURL: sess.RedirectURL,
		EventID:     eventID,
	}, nil
}

// GenOrderID: order-<yyyymmddHHMMSS>-<8 hex acak>.
func GenOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("order-%s-%s", now.UTC().Format("20060102150405"), suffix)
}

/* =========================================================
   Status reconciliation
========================================================= */

// Transition hasil satu rekonsiliasi. Status = status tersimpan setelahnya.
type Transition struct {
	OrderID  string
	Previous string
	Status   string
	Updated  bool
}

// ApplyGatewayStatus memetakan status mentah lalu menulis hanya jika berbeda
// dan baris belum terminal.
func (m *Manager) ApplyGatewayStatus(ctx context.Context, orderID, rawStatus string) (*Transition, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	if strings.TrimSpace(rawStatus) == "" {
		return nil, ErrStatusRequired
	}

	d, err := m.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return m.apply(ctx, d, rawStatus)
}

func (m *Manager) apply(ctx context.Context, d *model.Donation, rawStatus string) (*Transition, error) {
	next := model.MapGatewayStatus(rawStatus)
	tr := &Transition{OrderID: d.OrderID, Previous: d.Status, Status: d.Status}

	if d.Status == next {
		m.log.Debug("status unchanged", zap.String("order_id", d.OrderID), zap.String("status", next))
		return tr, nil
	}
	if model.IsTerminal(d.Status) {
		m.log.Warn("late status report ignored, order already final",
			zap.String("order_id", d.OrderID),
			zap.String("current", d.Status),
			zap.String("reported", rawStatus))
		return tr, nil
	}

	ok, err := m.donations.TransitionStatus(ctx, d.OrderID, next)
	if err != nil {
		return nil, fmt.Errorf("update donation status: %w", err)
	}
	if !ok {
		// kalah balapan dengan penulis lain; kembalikan status terbaru
		if cur, err := m.donations.FindByOrderID(ctx, d.OrderID); err == nil {
			tr.Status = cur.Status
		}
		m.log.Info("status write skipped (concurrent update)",
			zap.String("order_id", d.OrderID), zap.String("status", tr.Status))
		return tr, nil
	}

	tr.Status = next
	tr.Updated = true
	m.log.Info("status updated",
		zap.String("order_id", d.OrderID),
		zap.String("from", tr.Previous),
		zap.String("to", next))
	return tr, nil
}

// ConfirmTransaction dipanggil browser setelah widget Snap selesai.
// manualStatus kosong → status diambil langsung dari gateway.
func (m *Manager) ConfirmTransaction(ctx context.Context, orderID, manualStatus string) (*Transition, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	d, err := m.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if s := strings.TrimSpace(manualStatus); s != "" {
		return m.apply(ctx, d, s)
	}
	return m.refreshFromGateway(ctx, d)
}

// PollStatus: gateway hanya dihubungi selama status tersimpan masih pending.
func (m *Manager) PollStatus(ctx context.Context, orderID string) (*Transition, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	d, err := m.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if d.Status != model.StatusPending {
		return &Transition{OrderID: d.OrderID, Previous: d.Status, Status: d.Status}, nil
	}
	return m.refreshFromGateway(ctx, d)
}

func (m *Manager) refreshFromGateway(ctx context.Context, d *model.Donation) (*Transition, error) {
	raw, err := m.gateway.TransactionStatus(ctx, d.OrderID)
	if errors.Is(err, ErrGatewayTransactionNotFound) {
		// donatur belum memilih metode bayar: anggap masih pending
		return &Transition{OrderID: d.OrderID, Previous: d.Status, Status: d.Status}, nil
	}
	if err != nil {
		m.log.Error("[MIDTRANS] check transaction", zap.String("order_id", d.OrderID), zap.Error(err))
		return nil, newGatewayError(OpQueryStatus, err)
	}
	return m.apply(ctx, d, raw)
}

func (m *Manager) findOrder(ctx context.Context, orderID string) (*model.Donation, error) {
	d, err := m.donations.FindByOrderID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find donation %s: %w", orderID, err)
	}
	return d, nil
}

/* =========================================================
   Queries
========================================================= */

// TotalForCurrentEvent jumlah settlement event aktif; 0 kalau tidak ada event.
func (m *Manager) TotalForCurrentEvent(ctx context.Context) (int64, error) {
	ev, err := m.currentEvent(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve active event: %w", err)
	}
	if ev == nil {
		return 0, nil
	}
	total, err := m.donations.SumSettledByEvent(ctx, ev.ID)
	if err != nil {
		return 0, fmt.Errorf("sum settled donations: %w", err)
	}
	return total, nil
}

func (m *Manager) ListDonations(ctx context.Context) ([]model.DonationRow, error) {
	return m.donations.ListWithEvent(ctx)
}

func (m *Manager) currentEvent(ctx context.Context) (*eventModel.DonationEvent, error) {
	return m.events.FindCurrent(ctx, dbtime.Today(m.now(), m.loc))
}
