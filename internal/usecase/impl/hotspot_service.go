package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"go.uber.org/fx"

	deliverycontext "krvt/internal/delivery/context"
	"krvt/internal/domain/entity"
	domainerrors "krvt/internal/domain/errors"
	"krvt/internal/domain/repository"
	"krvt/internal/domain/service"
	"krvt/internal/usecase"
)

type hotspotService struct {
	hotspotRepo repository.HotspotRepository
	idGen       service.IDGenerator
	logger      *slog.Logger
}

// HotspotServiceParams defines dependencies for the hotspot service.
type HotspotServiceParams struct {
	fx.In

	HotspotRepo repository.HotspotRepository
	IDGen       service.IDGenerator
	Logger      *slog.Logger
}

// NewHotspotService creates a new hotspot service.
func NewHotspotService(params HotspotServiceParams) usecase.HotspotUsecase {
	return &hotspotService{
		hotspotRepo: params.HotspotRepo,
		idGen:       params.IDGen,
		logger:      params.Logger,
	}
}

func (srv *hotspotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *hotspotService) ListHotspots(ctx context.Context) []*entity.Hotspot {
	return srv.hotspotRepo.List(ctx)
}

func (srv *hotspotService) AddHotspot(ctx context.Context, input *usecase.AddHotspotInput) (*entity.Hotspot, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("hotspot name is required")
	}

	spot := &entity.Hotspot{
		ID:             srv.idGen.NewID(),
		Name:           strings.TrimSpace(input.Name),
		PollutionLevel: entity.ClampLevel(input.Level),
		Note:           strings.TrimSpace(input.Note),
	}

	srv.hotspotRepo.Insert(ctx, spot)

	srv.log(ctx).Info("hotspot added",
		slog.String("hotspot_id", spot.ID),
		slog.Int("level", spot.PollutionLevel))

	return spot, nil
}

func (srv *hotspotService) SetLevel(ctx context.Context, id string, level int) error {
	clamped := entity.ClampLevel(level)

	if !srv.hotspotRepo.SetLevel(ctx, id, clamped) {
		srv.log(ctx).Debug("set level on unknown hotspot", slog.String("hotspot_id", id))

		return nil
	}

	srv.log(ctx).Info("hotspot level updated",
		slog.String("hotspot_id", id),
		slog.Int("level", clamped))

	return nil
}

func (srv *hotspotService) RemoveHotspot(ctx context.Context, id string) error {
	if !srv.hotspotRepo.Remove(ctx, id) {
		srv.log(ctx).Debug("remove of unknown hotspot", slog.String("hotspot_id", id))

		return nil
	}

	srv.log(ctx).Info("hotspot removed", slog.String("hotspot_id", id))

	return nil
}

func (srv *hotspotService) Overview(ctx context.Context) *usecase.HotspotOverview {
	spots := srv.hotspotRepo.List(ctx)

	sum := 0
	for _, spot := range spots {
		sum += spot.PollutionLevel
	}

	divisor := len(spots)
	if divisor == 0 {
		divisor = 1
	}

	average := int(math.Round(float64(sum) / float64(divisor)))
	severity := entity.ClassifyLevel(average)

	return &usecase.HotspotOverview{
		Count:        len(spots),
		AverageLevel: average,
		Severity:     severity,
		Label:        severity.Label(),
		Color:        severity.Color(),
	}
}
