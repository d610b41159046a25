package main

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			migrate,
			reportStartup,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewStores,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryService,
			impl.NewReviewService,
			impl.NewBillingAddressService,
			impl.NewVisitorCountService,
			impl.NewOrderCountService,
		),
	)
}

// migrate brings the schema up to date before the services take traffic
func migrate(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
				return err
			}
			logger.Info("schema migration complete")

			return nil
		},
	})
}

type startupParams struct {
	fx.In
	fx.Lifecycle

	Config        *config.Config
	Logger        *slog.Logger
	VisitorCounts usecase.VisitorCountUsecase
	OrderCounts   usecase.OrderCountUsecase
	Categories    usecase.CategoryUsecase
	Reviews       usecase.ReviewUsecase
	Billing       usecase.BillingAddressUsecase
}

// reportStartup forces the full service graph to build and logs the recent
// visitor history so operators can eyeball the counters. It only reads:
// counter events are recorded by the session layer, never by the binary.
func reportStartup(params startupParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			recent, err := params.VisitorCounts.ListRecent(ctx, params.Config.Statistics.RecentDays)
			if err != nil {
				return err
			}
			params.Logger.Info("storefront data services ready",
				slog.String("service", params.Config.Env.ServiceName),
				slog.Int("recent_visitor_days", len(recent)),
			)

			return nil
		},
	})
}
