package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/donations/events/dto"
	"colosagu_backend/internals/features/donations/events/model"
	"colosagu_backend/internals/features/donations/events/repository"
	helper "colosagu_backend/internals/helpers"
	"colosagu_backend/internals/helpers/dbtime"
)

type DonationEventController struct {
	Repo      *repository.DonationEventRepository
	Validator *validator.Validate
	Location  *time.Location
	Now       func() time.Time
	Log       *zap.Logger
}

func NewDonationEventController(db *gorm.DB, loc *time.Location, log *zap.Logger) *DonationEventController {
	return &DonationEventController{
		Repo:      repository.NewDonationEventRepository(db),
		Validator: validator.New(),
		Location:  loc,
		Now:       time.Now,
		Log:       log.Named("donation_event"),
	}
}

// GET /api/active-event
func (ctl *DonationEventController) GetActive(c *fiber.Ctx) error {
	today := dbtime.Today(ctl.Now(), ctl.Location)
	ev, err := ctl.Repo.FindCurrent(c.UserContext(), today)
	if err != nil {
		ctl.Log.Error("[DB] fetch active event", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if ev == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No active event")
	}
	return c.JSON(dto.FromModel(ev))
}

// GET /api/events
func (ctl *DonationEventController) List(c *fiber.Ctx) error {
	rows, err := ctl.Repo.List(c.UserContext())
	if err != nil {
		ctl.Log.Error("[DB] list events", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(dto.FromModels(rows))
}

// POST /api/events
func (ctl *DonationEventController) Create(c *fiber.Ctx) error {
	var req dto.UpsertDonationEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	start, end, err := req.Validate(ctl.Validator)
	if err != nil {
		return ctl.validationFailed(c, err)
	}

	var ev model.DonationEvent
	req.Apply(&ev, start, end)
	if handled, err := ctl.rejectOverlap(c, &ev); handled {
		return err
	}

	if err := ctl.Repo.Create(c.UserContext(), &ev); err != nil {
		ctl.Log.Error("[DB] create event", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat event")
	}
	ctl.Log.Info("event created", zap.Uint("id", ev.ID), zap.String("name", ev.Name))
	return helper.JsonCreated(c, "Event berhasil dibuat", dto.FromModel(&ev))
}

// PUT /api/events/:id
func (ctl *DonationEventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpsertDonationEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	start, end, err := req.Validate(ctl.Validator)
	if err != nil {
		return ctl.validationFailed(c, err)
	}

	ev, err := ctl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	req.Apply(ev, start, end)
	if handled, err := ctl.rejectOverlap(c, ev); handled {
		return err
	}

	if err := ctl.Repo.Save(c.UserContext(), ev); err != nil {
		ctl.Log.Error("[DB] update event", zap.Uint("id", id), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}
	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.FromModel(ev))
}

// DELETE /api/events/:id
func (ctl *DonationEventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ok, err := ctl.Repo.Delete(c.UserContext(), id)
	if err != nil {
		ctl.Log.Error("[DB] delete event", zap.Uint("id", id), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{"id": id})
}

// rejectOverlap: hanya event aktif yang dicek, event nonaktif bebas beririsan.
// handled=true berarti response sudah ditulis.
func (ctl *DonationEventController) rejectOverlap(c *fiber.Ctx, ev *model.DonationEvent) (bool, error) {
	if !ev.IsActive {
		return false, nil
	}
	other, err := ctl.Repo.FindActiveOverlap(c.UserContext(), ev)
	if err != nil {
		ctl.Log.Error("[DB] overlap check", zap.Error(err))
		return true, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa event")
	}
	if other != nil {
		return true, helper.JsonErrorDetail(c, fiber.StatusConflict,
			"Rentang tanggal beririsan dengan event aktif lain", other.Name)
	}
	return false, nil
}

func (ctl *DonationEventController) validationFailed(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return helper.ValidationError(c, err)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
}
