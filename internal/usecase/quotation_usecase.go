package usecase

import (
	"context"
	"io"
	"time"

	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationUsecase defines the customer and staff operations on quotations.
type QuotationUsecase interface {
	// UploadFile stores a design file in the caller's namespace so a submission can reference it.
	UploadFile(ctx context.Context, caller entity.Caller, input *UploadFileInput) (*UploadedFile, error)

	// Submit creates a quotation in Pending Review.
	Submit(ctx context.Context, caller entity.Caller, input *SubmitQuotationInput) (*entity.Quotation, error)

	// UpdateQuote prices or progresses a quotation. Staff only.
	UpdateQuote(ctx context.Context, caller entity.Caller, id uuid.UUID, input *UpdateQuoteInput) (*entity.Quotation, error)

	// ListQuotations returns every quotation for staff and the caller's own otherwise, newest first.
	ListQuotations(ctx context.Context, caller entity.Caller) ([]*entity.Quotation, error)

	// GetQuotation returns one quotation visible to the caller.
	GetQuotation(ctx context.Context, caller entity.Caller, id uuid.UUID) (*entity.Quotation, error)

	// DownloadURL returns a short-lived link to the design file.
	DownloadURL(ctx context.Context, caller entity.Caller, id uuid.UUID) (*DownloadLink, error)

	// PaymentQR renders a QR code of the payment link of a Quoted quotation.
	PaymentQR(ctx context.Context, caller entity.Caller, id uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// UploadFileInput defines a design file upload.
type UploadFileInput struct {
	Type        entity.QuotationType
	FileName    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// SubmitQuotationInput defines the data required to request a quote.
type SubmitQuotationInput struct {
	Type              entity.QuotationType   `json:"type" validate:"required,oneof=PCB Assembly"`
	Config            entity.QuotationConfig `json:"config" validate:"required"`
	FilePath          string                 `json:"file_path" validate:"required"`
	AdditionalMessage string                 `json:"additional_message" validate:"max=2000"`
}

// UpdateQuoteInput defines a staff update. Only supplied fields change.
type UpdateQuoteInput struct {
	Status   *entity.QuotationStatus `json:"status,omitempty"`
	Total    *decimal.Decimal        `json:"total,omitempty"`
	Currency *entity.Currency        `json:"currency,omitempty"`
}

// --- Output DTOs ---

// UploadedFile describes a stored design file.
type UploadedFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// DownloadLink is a signed URL and its expiry.
type DownloadLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
