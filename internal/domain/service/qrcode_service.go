package service

// QRCodeService renders the device token as a scannable code
type QRCodeService interface {
	// GenerateTokenQR returns a PNG encoding of the token
	GenerateTokenQR(token string) ([]byte, error)
}
