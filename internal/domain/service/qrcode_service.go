package service

// QRCodeService renders links as scannable PNG codes.
type QRCodeService interface {
	// GeneratePNG encodes content into a PNG at the configured size.
	GeneratePNG(content string) ([]byte, error)
}
