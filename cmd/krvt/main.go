package main

import (
	"context"
	"log/slog"
	"os"

	"krvt/config"
	"krvt/internal/delivery"
	"krvt/internal/delivery/http"
	"krvt/internal/delivery/http/middleware"
	"krvt/internal/delivery/http/router/handler"
	"krvt/internal/domain/service"
	"krvt/internal/infra/idgen"
	logs "krvt/internal/infra/log"
	"krvt/internal/infra/persistence"
	"krvt/internal/infra/persistence/kv"
	"krvt/internal/infra/qrcode"
	"krvt/internal/infra/simulate"
	"krvt/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kv.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewHotspotRepository,
			persistence.NewEventRepository,
			persistence.NewParticipantRepository,
			persistence.NewRewardRepository,
			persistence.NewTrendRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			idgen.New,
			simulate.New,
			newVoucherService,
		),
	)
}

// newVoucherService creates the redemption voucher QR service with
// dependency injection. Voucher issuing is optional: without configuration
// redemptions still succeed, just without a voucher.
func newVoucherService(cfg *config.Config) service.VoucherService {
	if cfg.Voucher == nil {
		return nil
	}

	return qrcode.NewVoucherService(cfg.Voucher.Size, cfg.Voucher.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHotspotService,
			impl.NewEventService,
			impl.NewParticipantService,
			impl.NewRewardService,
			impl.NewTrendService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHotspotHandler,
			handler.NewEventHandler,
			handler.NewParticipantHandler,
			handler.NewRewardHandler,
			handler.NewTrendHandler,
			handler.NewHandbookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
