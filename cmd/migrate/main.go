package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// One-shot schema migration. Runs AutoMigrate against the configured
// database and exits.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(runMigration),
	).Run()
}

func runMigration(lc fx.Lifecycle, shutdowner fx.Shutdowner, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
				return err
			}
			logger.Info("schema migration complete")

			return shutdowner.Shutdown()
		},
	})
}
