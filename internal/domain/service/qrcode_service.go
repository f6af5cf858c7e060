package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing.
type QRCodeService interface {
	// GenerateRequestQR generates a QR code PNG that references a maintenance request.
	GenerateRequestQR(requestID uuid.UUID) ([]byte, error)

	// ParseRequestQR parses QR code data and returns the referenced request ID.
	ParseRequestQR(qrData string) (uuid.UUID, error)
}
