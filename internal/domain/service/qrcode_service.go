package service

// QRCodeService defines the interface for stall identity QR code generation
// and parsing.
type QRCodeService interface {
	// GenerateStallQR renders the scannable identity code for a stall as PNG bytes.
	GenerateStallQR(vendorID string) ([]byte, error)

	// ParseStallQR parses scanned QR payload data and returns the vendor id.
	ParseStallQR(qrData string) (string, error)
}
