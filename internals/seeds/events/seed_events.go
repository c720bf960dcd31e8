package events

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/features/donations/events/dto"
	"colosagu_backend/internals/features/donations/events/model"
	"colosagu_backend/internals/features/donations/events/repository"
)

// SeedEventsFromJSON memasukkan event dari file JSON (format sama dengan
// body POST /api/events). Nama yang sudah ada dilewati, begitu juga event
// aktif yang bentrok dengan event aktif lain.
func SeedEventsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) error {
	log.Info("📥 Membaca file event", zap.String("file", filePath))

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca %s: %w", filePath, err)
	}
	var inputs []dto.UpsertDonationEventRequest
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	repo := repository.NewDonationEventRepository(db)
	v := validator.New()

	for i := range inputs {
		in := &inputs[i]
		in.Normalize()
		start, end, err := in.Validate(v)
		if err != nil {
			log.Warn("❌ Event tidak valid, dilewati", zap.String("name", in.Name), zap.Error(err))
			continue
		}

		var count int64
		if err := db.WithContext(ctx).Model(&model.DonationEvent{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Info("ℹ️ Event sudah ada, dilewati.", zap.String("name", in.Name))
			continue
		}

		var ev model.DonationEvent
		in.Apply(&ev, start, end)
		if ev.IsActive {
			clash, err := repo.FindActiveOverlap(ctx, &ev)
			if err != nil {
				return err
			}
			if clash != nil {
				log.Warn("⚠️ Event aktif bentrok, dilewati",
					zap.String("name", ev.Name), zap.Uint("clash_id", clash.ID))
				continue
			}
		}
		if err := repo.Create(ctx, &ev); err != nil {
			return err
		}
		log.Info("✅ Event dibuat", zap.String("name", ev.Name), zap.Uint("id", ev.ID))
	}
	return nil
}
