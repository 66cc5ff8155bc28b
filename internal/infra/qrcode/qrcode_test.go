package qrcode

import (
	"testing"

	"krvt/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRedemptionQR(t *testing.T) {
	svc := NewVoucherService(256, "M")

	png, err := svc.GenerateRedemptionQR(service.Voucher{
		Code:          "a1b2c3d4e5f60718",
		RewardID:      "rw01",
		RewardName:    "Bình nước tái sử dụng",
		ParticipantID: "sv01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestNewVoucherService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewVoucherService(128, "X")

	png, err := svc.GenerateRedemptionQR(service.Voucher{Code: "deadbeef"})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
