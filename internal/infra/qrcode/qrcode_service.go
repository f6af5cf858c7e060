package qrcode

import (
	"encoding/json"
	"fmt"

	"fixflow/config"
	"fixflow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RequestID string `json:"request_id"`
	Type      string `json:"type"`
}

const qrTypeMaintenanceRequest = "maintenance_request"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	correction := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		correction = cfg.QRCode.ErrorCorrectionLevel
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch correction {
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

// GenerateRequestQR generates a QR code that identifies one maintenance request,
// suitable for printing on a work order.
func (s *qrcodeService) GenerateRequestQR(requestID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		RequestID: requestID.String(),
		Type:      qrTypeMaintenanceRequest,
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

// ParseRequestQR parses QR code data and returns the request ID
func (s *qrcodeService) ParseRequestQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeMaintenanceRequest {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	requestID, err := uuid.Parse(data.RequestID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse request ID: %w", err)
	}

	return requestID, nil
}
