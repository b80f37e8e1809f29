package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationType is the manufacturing variant a quotation requests.
type QuotationType string

const (
	QuotationTypePCB      QuotationType = "PCB"
	QuotationTypeAssembly QuotationType = "Assembly"
)

// IsValid checks if the QuotationType is a known variant.
func (t QuotationType) IsValid() bool {
	switch t {
	case QuotationTypePCB, QuotationTypeAssembly:
		return true
	default:
		return false
	}
}

// QuotationStatus is a state of the quotation lifecycle.
type QuotationStatus string

const (
	StatusPendingReview QuotationStatus = "Pending Review"
	StatusQuoted        QuotationStatus = "Quoted"
	StatusPaid          QuotationStatus = "Paid"
	StatusInProduction  QuotationStatus = "In Production"
	StatusShipped       QuotationStatus = "Shipped"
	StatusDelivered     QuotationStatus = "Delivered"
)

// String returns the string representation of the status.
func (s QuotationStatus) String() string {
	return string(s)
}

// Currency is the currency a quotation is priced in.
type Currency string

const (
	// CurrencyINR is the local currency.
	CurrencyINR Currency = "INR"
	// CurrencyUSD is the foreign currency.
	CurrencyUSD Currency = "USD"
)

// IsValid checks if the Currency is supported.
func (c Currency) IsValid() bool {
	return c == CurrencyINR || c == CurrencyUSD
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	if c == CurrencyUSD {
		return "$"
	}

	return "₹"
}

// QuotationConfig is the customer-entered attribute bag (dimensions, layers, finish, quantity...).
// It is immutable after creation.
type QuotationConfig map[string]any

// Quotation is one customer request and its fulfillment record.
type Quotation struct {
	ID                uuid.UUID        `json:"id"`
	OwnerID           uuid.UUID        `json:"owner_id"`
	OwnerName         string           `json:"owner_name"`
	Type              QuotationType    `json:"type"`
	Status            QuotationStatus  `json:"status"`
	Config            QuotationConfig  `json:"config"`
	Total             *decimal.Decimal `json:"total,omitempty"`    // Staff-controlled.
	Currency          *Currency        `json:"currency,omitempty"` // Staff-controlled.
	AdditionalMessage string           `json:"additional_message"`
	FilePath          *string          `json:"file_path,omitempty"`
	PaymentReference  *string          `json:"payment_reference,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// HasFile reports whether an uploaded object is attached.
func (q *Quotation) HasFile() bool {
	return q.FilePath != nil && *q.FilePath != ""
}

// IsPriced reports whether both staff-controlled price fields are set.
func (q *Quotation) IsPriced() bool {
	return q.Total != nil && q.Currency != nil
}

// QuotationPatch is the set of engine-owned fields written together in one conditional update.
// Nil fields are left untouched.
type QuotationPatch struct {
	Status           *QuotationStatus
	Total            *decimal.Decimal
	Currency         *Currency
	PaymentReference *string
}

// IsEmpty reports whether the patch changes nothing.
func (p QuotationPatch) IsEmpty() bool {
	return p.Status == nil && p.Total == nil && p.Currency == nil && p.PaymentReference == nil
}

// Apply copies the patch onto a quotation value.
func (p QuotationPatch) Apply(q *Quotation) {
	if p.Status != nil {
		q.Status = *p.Status
	}
	if p.Total != nil {
		total := *p.Total
		q.Total = &total
	}
	if p.Currency != nil {
		currency := *p.Currency
		q.Currency = &currency
	}
	if p.PaymentReference != nil {
		ref := *p.PaymentReference
		q.PaymentReference = &ref
	}
}

// QuotationFilter narrows quotation listings. A nil OwnerID lists every row.
type QuotationFilter struct {
	OwnerID *uuid.UUID
	Status  []QuotationStatus
}
