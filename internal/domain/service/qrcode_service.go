package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateChannelQR generates a QR code pointing at the channel page
	// of the given username.
	GenerateChannelQR(username string) ([]byte, error)
}
