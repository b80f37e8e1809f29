package qrcode

import (
	"encoding/json"
	"fmt"

	"fabquote/config"
	"fabquote/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	paymentType = "payment"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the payload encoded into payment QR codes
type QRCodeData struct {
	QuotationID string `json:"quotation_id"`
	Link        string `json:"link"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GeneratePaymentQR generates a PNG QR code pointing customers at the payment page of a quotation
func (s *qrcodeService) GeneratePaymentQR(quotationID uuid.UUID, paymentLink string) ([]byte, error) {
	if paymentLink == "" {
		return nil, fmt.Errorf("payment link is required")
	}

	jsonData, err := json.Marshal(QRCodeData{
		QuotationID: quotationID.String(),
		Link:        paymentLink,
		Type:        paymentType,
	})
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

// ParsePaymentQR parses QR code data and returns the quotation ID and payment link
func (s *qrcodeService) ParsePaymentQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != paymentType {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	quotationID, err := uuid.Parse(data.QuotationID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse quotation ID: %w", err)
	}

	return quotationID, data.Link, nil
}

// Module provides the QR code service
var Module = fx.Options(
	fx.Provide(NewQRCodeServiceFromConfig),
)
