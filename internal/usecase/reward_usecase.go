package usecase

import (
	"context"

	"krvt/internal/domain/entity"
	"krvt/internal/domain/service"
)

// AddRewardInput defines the data required to add a catalog item.
type AddRewardInput struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

// RedeemInput identifies the participant and the reward being redeemed.
type RedeemInput struct {
	ParticipantID string `json:"participant_id"`
	RewardID      string `json:"reward_id"`
}

// RedeemOutput carries the redeemed reward's name and, when voucher issuing
// is configured, a voucher with its QR image.
type RedeemOutput struct {
	RewardName string           `json:"reward_name"`
	Voucher    *service.Voucher `json:"voucher,omitempty"`
	VoucherQR  []byte           `json:"voucher_qr,omitempty"`
}

// RewardUsecase defines the operations on the reward catalog, including the
// one cross-aggregate transaction: redemption debits the participant ledger.
type RewardUsecase interface {
	// AddReward adds a catalog item with a generated id. The name is
	// required and the cost must be positive.
	AddReward(ctx context.Context, input *AddRewardInput) (*entity.Reward, error)

	// ListRewards returns the catalog in insertion order.
	ListRewards(ctx context.Context) []*entity.Reward

	// Redeem debits the reward's cost from the participant's balance. It
	// fails when either id is unknown or the balance is insufficient, in
	// which case the balance is unchanged.
	Redeem(ctx context.Context, input *RedeemInput) (*RedeemOutput, error)
}
