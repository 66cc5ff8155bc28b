// Package impl provides the implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	deliverycontext "krvt/internal/delivery/context"
	"krvt/internal/domain/entity"
	"krvt/internal/domain/repository"
	"krvt/internal/domain/service"
	"krvt/internal/usecase"
)

type trendService struct {
	trendRepo repository.TrendRepository
	simulator service.TrendSimulator
	logger    *slog.Logger
}

// TrendServiceParams defines dependencies for the trend service.
type TrendServiceParams struct {
	fx.In

	TrendRepo repository.TrendRepository
	Simulator service.TrendSimulator
	Logger    *slog.Logger
}

// NewTrendService creates a new trend service.
func NewTrendService(params TrendServiceParams) usecase.TrendUsecase {
	return &trendService{
		trendRepo: params.TrendRepo,
		simulator: params.Simulator,
		logger:    params.Logger,
	}
}

func (srv *trendService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *trendService) SimulateDay(ctx context.Context) *usecase.TrendOverview {
	point := srv.simulator.SampleDay(time.Now())
	window := srv.trendRepo.Append(ctx, point)

	srv.log(ctx).Info("trend day simulated",
		slog.String("date", point.Date),
		slog.Int("bags", point.Bags),
		slog.Int("rainfall", point.Rainfall))

	return &usecase.TrendOverview{
		History:   window,
		TotalBags: sumBags(window),
	}
}

func (srv *trendService) Overview(ctx context.Context) *usecase.TrendOverview {
	window := srv.trendRepo.History(ctx)

	return &usecase.TrendOverview{
		History:   window,
		TotalBags: sumBags(window),
	}
}

func (srv *trendService) TotalBags(ctx context.Context) int {
	return sumBags(srv.trendRepo.History(ctx))
}

func (srv *trendService) SetWeatherAlert(ctx context.Context, input *usecase.SetWeatherAlertInput) entity.WeatherAlert {
	alert := entity.WeatherAlert{
		BadWeatherRisk: input.BadWeatherRisk,
		Note:           strings.TrimSpace(input.Note),
	}

	srv.trendRepo.SetAlert(ctx, alert)

	srv.log(ctx).Info("weather alert updated", slog.Bool("bad_weather_risk", alert.BadWeatherRisk))

	return alert
}

func (srv *trendService) WeatherAlert(ctx context.Context) entity.WeatherAlert {
	return srv.trendRepo.Alert(ctx)
}

func sumBags(points []entity.TrendPoint) int {
	total := 0
	for _, point := range points {
		total += point.Bags
	}

	return total
}
