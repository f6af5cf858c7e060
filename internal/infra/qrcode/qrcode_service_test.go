package qrcode

import (
	"encoding/json"
	"testing"

	"fixflow/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParse(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	requestID := uuid.New()
	png, err := svc.GenerateRequestQR(requestID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])

	payload, err := json.Marshal(QRCodeData{RequestID: requestID.String(), Type: qrTypeMaintenanceRequest})
	require.NoError(t, err)

	parsed, err := svc.ParseRequestQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, requestID, parsed)
}

func TestQRCodeService_ParseRejectsForeignType(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{RequestID: uuid.NewString(), Type: "subscription"})
	require.NoError(t, err)

	_, err = svc.ParseRequestQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseRejectsGarbage(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.ParseRequestQR("not-json")
	assert.Error(t, err)
}
