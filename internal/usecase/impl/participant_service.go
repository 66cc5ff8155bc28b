package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"go.uber.org/fx"

	"krvt/internal/errors"

	deliverycontext "krvt/internal/delivery/context"
	"krvt/internal/domain/entity"
	domainerrors "krvt/internal/domain/errors"
	"krvt/internal/domain/repository"
	"krvt/internal/usecase"
)

type participantService struct {
	participantRepo repository.ParticipantRepository
	logger          *slog.Logger
}

// ParticipantServiceParams defines dependencies for the participant service.
type ParticipantServiceParams struct {
	fx.In

	ParticipantRepo repository.ParticipantRepository
	Logger          *slog.Logger
}

// NewParticipantService creates a new participant service.
func NewParticipantService(params ParticipantServiceParams) usecase.ParticipantUsecase {
	return &participantService{
		participantRepo: params.ParticipantRepo,
		logger:          params.Logger,
	}
}

func (srv *participantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *participantService) AddParticipant(ctx context.Context, input *usecase.AddParticipantInput) (*entity.Participant, error) {
	id := strings.TrimSpace(input.ID)
	name := strings.TrimSpace(input.Name)

	if id == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("participant id and name are required")
	}

	participant := &entity.Participant{
		ID:     id,
		Name:   name,
		Points: 0,
	}

	if err := srv.participantRepo.Insert(ctx, participant); err != nil {
		if errors.Is(err, repository.ErrParticipantExists) {
			return nil, domainerrors.ErrParticipantConflict.WrapMessage("participant id " + id + " already exists")
		}

		return nil, errors.Wrap(err, "insert participant")
	}

	srv.log(ctx).Info("participant registered", slog.String("participant_id", id))

	return participant, nil
}

func (srv *participantService) ListParticipants(ctx context.Context) []*entity.Participant {
	return srv.participantRepo.List(ctx)
}

func (srv *participantService) Leaderboard(ctx context.Context, limit int) []*entity.Participant {
	participants := srv.participantRepo.List(ctx)

	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Points > participants[j].Points
	})

	if limit > 0 && len(participants) > limit {
		participants = participants[:limit]
	}

	return participants
}
