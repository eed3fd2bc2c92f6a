package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateStallQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateStallQR("v1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateStallQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateStallQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateStallQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateStallQR("v2")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseStallQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		VendorID: "v1",
		Type:     "puesto",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseStallQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "v1", parsedID)
}

func TestQRCodeService_ParseStallQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseStallQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseStallQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		VendorID: "v1",
		Type:     "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseStallQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseStallQR_MissingVendorID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		VendorID: "",
		Type:     "puesto",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseStallQR(string(jsonData))
	assert.Error(t, err)
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Generate the PNG for a stall, then parse the same payload the image
	// encodes. In real usage a phone camera extracts the JSON string.
	qrBytes, err := service.GenerateStallQR("v-nuevo")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	data := QRCodeData{VendorID: "v-nuevo", Type: "puesto"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseStallQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "v-nuevo", parsedID)
}
