package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"colosagu_backend/internals/features/donations/events/model"
	"colosagu_backend/internals/helpers/dbtime"
)

// ===================== Request =====================

type UpsertDonationEventRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	IsActive  bool   `json:"is_active"`
}

func (r *UpsertDonationEventRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

// Validate cek tag validator, lalu format & urutan tanggal.
func (r *UpsertDonationEventRequest) Validate(v *validator.Validate) (start, end time.Time, err error) {
	if err = v.Struct(r); err != nil {
		return
	}
	if start, err = dbtime.ParseDate(r.StartDate); err != nil {
		return
	}
	if end, err = dbtime.ParseDate(r.EndDate); err != nil {
		return
	}
	if end.Before(start) {
		err = errors.New("end_date tidak boleh sebelum start_date")
	}
	return
}

// Apply menulis nilai request ke model (create maupun update).
func (r *UpsertDonationEventRequest) Apply(m *model.DonationEvent, start, end time.Time) {
	m.Name = r.Name
	m.StartDate = dbtime.DateOnly(start)
	m.EndDate = dbtime.DateOnly(end)
	m.IsActive = r.IsActive
}

// ===================== Response =====================

type DonationEventResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *model.DonationEvent) DonationEventResponse {
	return DonationEventResponse{
		ID:        m.ID,
		Name:      m.Name,
		StartDate: dbtime.FormatDate(m.StartDate),
		EndDate:   dbtime.FormatDate(m.EndDate),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(rows []model.DonationEvent) []DonationEventResponse {
	out := make([]DonationEventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
