package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"gallery/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"", qrcode.Medium},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.name))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.level)

	svc = NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 0, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Highest, svc.level)
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M")

		data, err := svc.GeneratePNG("https://gallery.example/gallery?prompt_unlocked=neon-koi")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GeneratePNG_Empty(t *testing.T) {
	_, err := newQRCodeService(256, "M").GeneratePNG("")
	assert.Error(t, err)
}
