package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
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
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateProfileQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseProfileQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data := QRCodeData{
		UserID: uuid.New().String(),
		Type:   "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParseProfileQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseProfileQR_InvalidUUID(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data := QRCodeData{
		UserID: "not-a-valid-uuid",
		Type:   "profile",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParseProfileQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse user ID")
}

func TestQRCodeService_ParseProfileQR_MalformedJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseProfileQR("{not json")
	assert.Error(t, err)
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	originalUserID := uuid.New()

	qrBytes, err := svc.GenerateProfileQR(originalUserID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG itself cannot be decoded here; a scanner would hand back the
	// embedded JSON payload, which is what ParseProfileQR receives.
	data := QRCodeData{
		UserID: originalUserID.String(),
		Type:   "profile",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := svc.ParseProfileQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, originalUserID, parsedID)
}
