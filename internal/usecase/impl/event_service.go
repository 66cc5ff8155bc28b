package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	deliverycontext "krvt/internal/delivery/context"
	"krvt/internal/domain/entity"
	domainerrors "krvt/internal/domain/errors"
	"krvt/internal/domain/repository"
	"krvt/internal/domain/service"
	"krvt/internal/usecase"
)

const eventDateLayout = "2006-01-02"

type eventService struct {
	eventRepo       repository.EventRepository
	participantRepo repository.ParticipantRepository
	idGen           service.IDGenerator
	logger          *slog.Logger
}

// EventServiceParams defines dependencies for the event service.
type EventServiceParams struct {
	fx.In

	EventRepo       repository.EventRepository
	ParticipantRepo repository.ParticipantRepository
	IDGen           service.IDGenerator
	Logger          *slog.Logger
}

// NewEventService creates a new event service.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:       params.EventRepo,
		participantRepo: params.ParticipantRepo,
		idGen:           params.IDGen,
		logger:          params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *eventService) CreateEvent(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	name := strings.TrimSpace(input.Name)
	date := strings.TrimSpace(input.Date)

	if name == "" || date == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event name and date are required")
	}

	if _, err := time.Parse(eventDateLayout, date); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event date must be a calendar date (YYYY-MM-DD)")
	}

	points := input.PointsPerAttendance
	if points < 0 {
		points = 0
	}

	event := &entity.Event{
		ID:                  srv.idGen.NewID(),
		Name:                name,
		Date:                date,
		Description:         strings.TrimSpace(input.Description),
		PointsPerAttendance: points,
		Attendees:           []string{},
	}

	srv.eventRepo.Insert(ctx, event)

	srv.log(ctx).Info("event created",
		slog.String("event_id", event.ID),
		slog.String("date", event.Date),
		slog.Int("points_per_attendance", event.PointsPerAttendance))

	return event, nil
}

func (srv *eventService) ListEvents(ctx context.Context) []*entity.Event {
	return srv.eventRepo.List(ctx)
}

func (srv *eventService) ToggleAttendance(ctx context.Context, eventID, participantID string) error {
	if !srv.eventRepo.ToggleAttendee(ctx, eventID, participantID) {
		srv.log(ctx).Debug("toggle attendance on unknown event", slog.String("event_id", eventID))

		return nil
	}

	srv.log(ctx).Info("attendance toggled",
		slog.String("event_id", eventID),
		slog.String("participant_id", participantID))

	return nil
}

func (srv *eventService) AwardPoints(ctx context.Context, eventID string) (*usecase.AwardOutput, error) {
	event, found := srv.eventRepo.FindByID(ctx, eventID)
	if !found {
		srv.log(ctx).Warn("award on unknown event", slog.String("event_id", eventID))

		return &usecase.AwardOutput{EventID: eventID, Credited: []string{}}, nil
	}

	output := &usecase.AwardOutput{
		EventID:             event.ID,
		PointsPerAttendance: event.PointsPerAttendance,
		Credited:            []string{},
	}

	for _, participantID := range event.Attendees {
		if srv.participantRepo.Credit(ctx, participantID, event.PointsPerAttendance) {
			output.Credited = append(output.Credited, participantID)
		} else {
			output.Skipped = append(output.Skipped, participantID)
		}
	}

	srv.log(ctx).Info("points awarded",
		slog.String("event_id", event.ID),
		slog.Int("credited", len(output.Credited)),
		slog.Int("skipped", len(output.Skipped)))

	return output, nil
}
