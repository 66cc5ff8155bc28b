package impl_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"krvt/config"
	"krvt/internal/domain/repository"
	"krvt/internal/infra/idgen"
	"krvt/internal/infra/persistence"
	"krvt/internal/infra/persistence/kv"
	"krvt/internal/infra/qrcode"
	"krvt/internal/infra/simulate"
	"krvt/internal/usecase"
	"krvt/internal/usecase/impl"
)

// fixture wires the services to real repositories over an in-memory snapshot
// store, seeded with the built-in defaults.
type fixture struct {
	ctx context.Context

	store           repository.SnapshotStore
	participantRepo repository.ParticipantRepository

	hotspots     usecase.HotspotUsecase
	events       usecase.EventUsecase
	participants usecase.ParticipantUsecase
	rewards      usecase.RewardUsecase
	trends       usecase.TrendUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemory()
	idGen := idgen.New()

	cfg := &config.Config{
		Simulation: config.SimulationConfig{
			DailyRainProbability: 0.5,
			SeedRainProbability:  0.35,
			SeedDays:             15,
		},
	}
	simulator := simulate.New(cfg)

	hotspotRepo := persistence.NewHotspotRepository(ctx, store, logger)
	eventRepo := persistence.NewEventRepository(ctx, store, logger, idGen)
	participantRepo := persistence.NewParticipantRepository(ctx, store, logger)
	rewardRepo := persistence.NewRewardRepository(ctx, store, logger)
	trendRepo := persistence.NewTrendRepository(ctx, store, logger, simulator, cfg)

	return &fixture{
		ctx:             ctx,
		store:           store,
		participantRepo: participantRepo,
		hotspots: impl.NewHotspotService(impl.HotspotServiceParams{
			HotspotRepo: hotspotRepo,
			IDGen:       idGen,
			Logger:      logger,
		}),
		events: impl.NewEventService(impl.EventServiceParams{
			EventRepo:       eventRepo,
			ParticipantRepo: participantRepo,
			IDGen:           idGen,
			Logger:          logger,
		}),
		participants: impl.NewParticipantService(impl.ParticipantServiceParams{
			ParticipantRepo: participantRepo,
			Logger:          logger,
		}),
		rewards: impl.NewRewardService(impl.RewardServiceParams{
			RewardRepo:      rewardRepo,
			ParticipantRepo: participantRepo,
			VoucherService:  qrcode.NewVoucherService(256, "M"),
			IDGen:           idGen,
			Logger:          logger,
		}),
		trends: impl.NewTrendService(impl.TrendServiceParams{
			TrendRepo: trendRepo,
			Simulator: simulator,
			Logger:    logger,
		}),
	}
}
