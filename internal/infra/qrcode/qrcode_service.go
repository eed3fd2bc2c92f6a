package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"feria/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload structure
type QRCodeData struct {
	VendorID string `json:"vendor_id"`
	Type     string `json:"type"`
}

// payloadType tags stall identity codes so the scanner rejects foreign QRs.
const payloadType = "puesto"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateStallQR renders the scannable identity code for a stall as PNG bytes.
func (s *qrcodeService) GenerateStallQR(vendorID string) ([]byte, error) {
	if strings.TrimSpace(vendorID) == "" {
		return nil, fmt.Errorf("vendor id must not be empty")
	}

	data := QRCodeData{
		VendorID: vendorID,
		Type:     payloadType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
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

// ParseStallQR parses scanned QR payload data and returns the vendor id.
func (s *qrcodeService) ParseStallQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != payloadType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.VendorID == "" {
		return "", fmt.Errorf("QR code carries no vendor id")
	}

	return data.VendorID, nil
}
