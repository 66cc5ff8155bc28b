// Package qrcode renders redemption vouchers as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"

	"krvt/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type voucherService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewVoucherService creates a new voucher QR service instance
func NewVoucherService(size int, errorCorrectionLevel string) service.VoucherService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &voucherService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRedemptionQR encodes the voucher payload as a PNG QR code.
func (s *voucherService) GenerateRedemptionQR(voucher service.Voucher) ([]byte, error) {
	jsonData, err := json.Marshal(voucher)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal voucher data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
