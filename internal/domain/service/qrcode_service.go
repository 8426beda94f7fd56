package service

// QRCodeService renders payment QR codes.
type QRCodeService interface {
	// GeneratePaymentQR encodes content (a checkout URL or VietQR payload) as a PNG.
	GeneratePaymentQR(content string) ([]byte, error)
}
