// Package qrcode renders unlock links as PNG attachments for confirmation mail.
package qrcode

import (
	"strings"

	"gallery/config"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService reads qrcode.size and qrcode.errorCorrectionLevel (L, M, Q or H).
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr content must not be empty")
	}

	code, err := qrcode.New(content, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}
