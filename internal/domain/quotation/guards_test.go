package quotation

import (
	"testing"

	"fabquote/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func statusPtr(s entity.QuotationStatus) *entity.QuotationStatus {
	return &s
}

func strPtr(s string) *string {
	return &s
}

func TestCanStaffUpdate(t *testing.T) {
	tests := []struct {
		name          string
		ctx           StaffUpdateContext
		wantAllowed   bool
		wantViolation Violation
	}{
		{
			name: "staff quotes a pending quotation with a price",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPendingReview, Target: statusPtr(entity.StatusQuoted),
				PriceSupplied: true, PricedAfter: true,
			},
			wantAllowed: true,
		},
		{
			name: "customer cannot update",
			ctx: StaffUpdateContext{
				IsStaff: false, Current: entity.StatusPendingReview, Target: statusPtr(entity.StatusQuoted),
				PriceSupplied: true, PricedAfter: true,
			},
			wantViolation: ViolationForbidden,
		},
		{
			name: "quoting without a price is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPendingReview, Target: statusPtr(entity.StatusQuoted),
			},
			wantViolation: ViolationValidation,
		},
		{
			name: "quoting with only a currency is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPendingReview, Target: statusPtr(entity.StatusQuoted),
				PriceSupplied: true, PricedAfter: false,
			},
			wantViolation: ViolationValidation,
		},
		{
			name: "empty update is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusQuoted,
			},
			wantViolation: ViolationValidation,
		},
		{
			name: "re-price while quoted",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusQuoted, Target: statusPtr(entity.StatusQuoted),
				PriceSupplied: true, PricedAfter: true,
			},
			wantAllowed: true,
		},
		{
			name: "price only while pending review is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPendingReview, PriceSupplied: true, PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "re-price after payment is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPaid, PriceSupplied: true, PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "staff cannot set paid",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusQuoted, Target: statusPtr(entity.StatusPaid), PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "staff cannot skip payment",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusQuoted, Target: statusPtr(entity.StatusInProduction), PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "paid to shipped skips a step forward",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPaid, Target: statusPtr(entity.StatusShipped), PricedAfter: true,
			},
			wantAllowed: true,
		},
		{
			name: "shipped to delivered",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusShipped, Target: statusPtr(entity.StatusDelivered), PricedAfter: true,
			},
			wantAllowed: true,
		},
		{
			name: "backward move is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPaid, Target: statusPtr(entity.StatusPendingReview), PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "terminal state cannot be re-entered",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusDelivered, Target: statusPtr(entity.StatusDelivered), PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "nothing leaves delivered",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusDelivered, Target: statusPtr(entity.StatusShipped), PricedAfter: true,
			},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "unknown status is rejected",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPaid, Target: statusPtr("Lost"), PricedAfter: true,
			},
			wantViolation: ViolationValidation,
		},
		{
			name: "unknown status with a price on a paid row is a validation error",
			ctx: StaffUpdateContext{
				IsStaff: true, Current: entity.StatusPaid, Target: statusPtr("Bogus"),
				PriceSupplied: true, PricedAfter: true,
			},
			wantViolation: ViolationValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStaffUpdate(tt.ctx)
			assert.Equal(t, tt.wantAllowed, result.Allowed, result.Reason)
			if !tt.wantAllowed {
				assert.Equal(t, tt.wantViolation, result.Violation)
				assert.Error(t, result.Error())
			} else {
				assert.NoError(t, result.Error())
			}
		})
	}
}

func TestCanSettle(t *testing.T) {
	tests := []struct {
		name          string
		ctx           SettlementContext
		wantAllowed   bool
		wantNoop      bool
		wantViolation Violation
	}{
		{
			name:        "owner pays a quoted quotation",
			ctx:         SettlementContext{IsOwner: true, Current: entity.StatusQuoted, PaymentReference: "pay_123"},
			wantAllowed: true,
		},
		{
			name:          "missing reference",
			ctx:           SettlementContext{IsOwner: true, Current: entity.StatusQuoted},
			wantViolation: ViolationValidation,
		},
		{
			name:          "non-owner",
			ctx:           SettlementContext{IsOwner: false, Current: entity.StatusQuoted, PaymentReference: "pay_123"},
			wantViolation: ViolationForbidden,
		},
		{
			name:          "not yet quoted",
			ctx:           SettlementContext{IsOwner: true, Current: entity.StatusPendingReview, PaymentReference: "pay_123"},
			wantViolation: ViolationInvalidState,
		},
		{
			name: "retry with the same reference",
			ctx: SettlementContext{
				IsOwner: true, Current: entity.StatusPaid, ExistingRef: strPtr("pay_123"), PaymentReference: "pay_123",
			},
			wantAllowed: true,
			wantNoop:    true,
		},
		{
			name: "retry after production started",
			ctx: SettlementContext{
				IsOwner: true, Current: entity.StatusInProduction, ExistingRef: strPtr("pay_123"), PaymentReference: "pay_123",
			},
			wantAllowed: true,
			wantNoop:    true,
		},
		{
			name: "different reference on a paid quotation",
			ctx: SettlementContext{
				IsOwner: true, Current: entity.StatusPaid, ExistingRef: strPtr("pay_123"), PaymentReference: "pay_999",
			},
			wantViolation: ViolationConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := CanSettle(tt.ctx)
			assert.Equal(t, tt.wantAllowed, decision.Allowed, decision.Reason)
			assert.Equal(t, tt.wantNoop, decision.AlreadySettled)
			if !tt.wantAllowed {
				assert.Equal(t, tt.wantViolation, decision.Violation)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name          string
		ctx           CancelContext
		wantAllowed   bool
		wantViolation Violation
	}{
		{name: "pending review", ctx: CancelContext{IsOwner: true, Current: entity.StatusPendingReview}, wantAllowed: true},
		{name: "quoted", ctx: CancelContext{IsOwner: true, Current: entity.StatusQuoted}, wantAllowed: true},
		{name: "paid", ctx: CancelContext{IsOwner: true, Current: entity.StatusPaid}, wantViolation: ViolationInvalidState},
		{name: "in production", ctx: CancelContext{IsOwner: true, Current: entity.StatusInProduction}, wantViolation: ViolationInvalidState},
		{name: "shipped", ctx: CancelContext{IsOwner: true, Current: entity.StatusShipped}, wantViolation: ViolationInvalidState},
		{name: "delivered", ctx: CancelContext{IsOwner: true, Current: entity.StatusDelivered}, wantViolation: ViolationInvalidState},
		{name: "not the owner", ctx: CancelContext{IsOwner: false, Current: entity.StatusPendingReview}, wantViolation: ViolationForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCancel(tt.ctx)
			assert.Equal(t, tt.wantAllowed, result.Allowed)
			assert.Equal(t, tt.wantViolation, result.Violation)
		})
	}
}

func TestCanRead(t *testing.T) {
	assert.True(t, CanRead(ReadContext{IsStaff: true}).Allowed)
	assert.True(t, CanRead(ReadContext{IsOwner: true}).Allowed)
	assert.Equal(t, ViolationForbidden, CanRead(ReadContext{}).Violation)
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("In Production")
	assert.True(t, ok)
	assert.Equal(t, entity.StatusInProduction, status)

	_, ok = ParseStatus("in production")
	assert.False(t, ok)

	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestIsStaffForwardStep(t *testing.T) {
	for _, from := range lifecycle {
		for _, to := range lifecycle {
			got := IsStaffForwardStep(from, to)
			if to == entity.StatusPaid || Rank(to) <= Rank(from) {
				assert.False(t, got, "%s -> %s", from, to)
			}
		}
	}
	assert.True(t, IsStaffForwardStep(entity.StatusPendingReview, entity.StatusQuoted))
	assert.True(t, IsStaffForwardStep(entity.StatusPaid, entity.StatusDelivered))
	assert.False(t, IsStaffForwardStep(entity.StatusPendingReview, entity.StatusShipped))
}
