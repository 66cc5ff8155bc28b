package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"krvt/internal/errors"

	deliverycontext "krvt/internal/delivery/context"
	"krvt/internal/domain/entity"
	domainerrors "krvt/internal/domain/errors"
	"krvt/internal/domain/repository"
	"krvt/internal/domain/service"
	"krvt/internal/usecase"
)

type rewardService struct {
	rewardRepo      repository.RewardRepository
	participantRepo repository.ParticipantRepository
	voucherService  service.VoucherService
	idGen           service.IDGenerator
	logger          *slog.Logger
}

// RewardServiceParams defines dependencies for the reward service. The
// voucher service is optional; without it redemptions succeed but issue no
// voucher.
type RewardServiceParams struct {
	fx.In

	RewardRepo      repository.RewardRepository
	ParticipantRepo repository.ParticipantRepository
	VoucherService  service.VoucherService `optional:"true"`
	IDGen           service.IDGenerator
	Logger          *slog.Logger
}

// NewRewardService creates a new reward service.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		rewardRepo:      params.RewardRepo,
		participantRepo: params.ParticipantRepo,
		voucherService:  params.VoucherService,
		idGen:           params.IDGen,
		logger:          params.Logger,
	}
}

func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *rewardService) AddReward(ctx context.Context, input *usecase.AddRewardInput) (*entity.Reward, error) {
	name := strings.TrimSpace(input.Name)

	if name == "" || input.Cost <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("reward name and a positive cost are required")
	}

	reward := &entity.Reward{
		ID:   srv.idGen.NewID(),
		Name: name,
		Cost: input.Cost,
	}

	srv.rewardRepo.Insert(ctx, reward)

	srv.log(ctx).Info("reward added",
		slog.String("reward_id", reward.ID),
		slog.Int("cost", reward.Cost))

	return reward, nil
}

func (srv *rewardService) ListRewards(ctx context.Context) []*entity.Reward {
	return srv.rewardRepo.List(ctx)
}

func (srv *rewardService) Redeem(ctx context.Context, input *usecase.RedeemInput) (*usecase.RedeemOutput, error) {
	participant, found := srv.participantRepo.FindByID(ctx, input.ParticipantID)
	if !found {
		return nil, domainerrors.ErrParticipantNotFound.WrapMessage("participant " + input.ParticipantID + " not found")
	}

	reward, found := srv.rewardRepo.FindByID(ctx, input.RewardID)
	if !found {
		return nil, domainerrors.ErrRewardNotFound.WrapMessage("reward " + input.RewardID + " not found")
	}

	if participant.Points < reward.Cost {
		return nil, domainerrors.ErrInsufficientPoints
	}

	// The balance may have changed since the check above; Debit re-verifies
	// under the ledger lock.
	if err := srv.participantRepo.Debit(ctx, participant.ID, reward.Cost); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientPoints):
			return nil, domainerrors.ErrInsufficientPoints
		case errors.Is(err, repository.ErrParticipantNotFound):
			return nil, domainerrors.ErrParticipantNotFound.WrapMessage("participant " + input.ParticipantID + " not found")
		default:
			return nil, errors.Wrap(err, "debit participant")
		}
	}

	output := &usecase.RedeemOutput{RewardName: reward.Name}

	if srv.voucherService != nil {
		voucher := service.Voucher{
			Code:          srv.idGen.NewID(),
			RewardID:      reward.ID,
			RewardName:    reward.Name,
			ParticipantID: participant.ID,
		}

		png, err := srv.voucherService.GenerateRedemptionQR(voucher)
		if err != nil {
			// Points are already debited; a voucher render failure must not
			// undo the redemption.
			srv.log(ctx).Warn("voucher QR generation failed",
				slog.String("reward_id", reward.ID),
				slog.Any("error", err))
		} else {
			output.VoucherQR = png
		}

		output.Voucher = &voucher
	}

	srv.log(ctx).Info("reward redeemed",
		slog.String("participant_id", participant.ID),
		slog.String("reward_id", reward.ID),
		slog.Int("cost", reward.Cost))

	return output, nil
}
