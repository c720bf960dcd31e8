package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"colosagu_backend/internals/configs"
	events "colosagu_backend/internals/seeds/events"
	users "colosagu_backend/internals/seeds/users"
)

func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg *configs.Config, log *zap.Logger) error {
	log = log.Named("seed")

	//* Users
	if err := users.SeedAdmin(ctx, db, cfg.Seed, log); err != nil {
		return err
	}

	//* Events
	if cfg.Seed.EventsFile != "" {
		if err := events.SeedEventsFromJSON(ctx, db, cfg.Seed.EventsFile, log); err != nil {
			return err
		}
	}
	return nil
}
