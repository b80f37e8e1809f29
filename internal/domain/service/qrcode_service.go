package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePaymentQR generates a QR code pointing at the payment page of a quotation
	GeneratePaymentQR(quotationID uuid.UUID, paymentLink string) ([]byte, error)

	// ParsePaymentQR parses QR code data and returns the quotation ID and link
	ParsePaymentQR(qrData string) (uuid.UUID, string, error)
}
