package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses profile share QR codes. The PNG encodes
// a small JSON payload pointing at the public profile page.
type QRCodeService interface {
	// GenerateProfileQR generates a QR code PNG for the account's profile.
	GenerateProfileQR(userID uuid.UUID) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the profile owner's id.
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
