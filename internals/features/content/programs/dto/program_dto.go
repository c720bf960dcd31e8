package dto

import (
	"strings"

	"colosagu_backend/internals/features/content/programs/model"
)

type ProgramRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required,max=100"`
	Status      string `json:"status" validate:"omitempty,max=50"`
	IsActive    bool   `json:"is_active"`
}

func (r *ProgramRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Icon = strings.TrimSpace(r.Icon)
	r.Status = strings.TrimSpace(r.Status)
	if r.Status == "" {
		r.Status = model.DefaultProgramStatus
	}
}

func (r *ProgramRequest) Apply(m *model.ProgramModel) {
	m.Title = r.Title
	m.Description = r.Description
	m.Icon = r.Icon
	m.Status = r.Status
	m.IsActive = r.IsActive
}
