package service

// Voucher is the redeemable proof handed out when a reward redemption
// succeeds. The code is a one-off token; the ids tie the voucher back to the
// ledger and catalog.
type Voucher struct {
	Code          string `json:"code"`
	RewardID      string `json:"reward_id"`
	RewardName    string `json:"reward_name"`
	ParticipantID string `json:"participant_id"`
}

// VoucherService renders redemption vouchers as scannable QR images.
type VoucherService interface {
	// GenerateRedemptionQR encodes the voucher as a PNG QR code.
	GenerateRedemptionQR(voucher Voucher) ([]byte, error)
}
