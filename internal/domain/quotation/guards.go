package quotation

import (
	"fmt"

	"fabquote/internal/domain/entity"
)

// Violation classifies why a guard refused an operation.
type Violation int

const (
	ViolationNone Violation = iota
	ViolationValidation
	ViolationForbidden
	ViolationInvalidState
	ViolationConflict
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed   bool
	Violation Violation
	Reason    string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}

	return fmt.Errorf("%s", r.Reason)
}

func allow() GuardResult {
	return GuardResult{Allowed: true}
}

func deny(violation Violation, format string, args ...any) GuardResult {
	return GuardResult{
		Allowed:   false,
		Violation: violation,
		Reason:    fmt.Sprintf(format, args...),
	}
}

// StaffUpdateContext provides context for the staff update guard.
type StaffUpdateContext struct {
	IsStaff       bool
	Current       entity.QuotationStatus
	Target        *entity.QuotationStatus // Nil when the status is not being changed.
	PriceSupplied bool                    // Total or currency present in the request.
	PricedAfter   bool                    // Both total and currency known once the update applies.
}

// CanStaffUpdate evaluates a staff update.
// Rules:
// - Caller must be staff
// - Something must change, and a target status must be known
// - Price may only change with the quote step or as a re-price while Quoted
// - Status moves follow IsStaffForwardStep, and quoting requires a complete price
func CanStaffUpdate(ctx StaffUpdateContext) GuardResult {
	if !ctx.IsStaff {
		return deny(ViolationForbidden, "only staff may update quotations")
	}

	target := ctx.Target
	if target != nil && *target == ctx.Current {
		if IsTerminal(ctx.Current) {
			return deny(ViolationInvalidState, "quotation is already %s", ctx.Current)
		}
		target = nil
	}

	if target != nil && Rank(*target) < 0 {
		return deny(ViolationValidation, "unknown status %q", *target)
	}

	if target == nil && !ctx.PriceSupplied {
		return deny(ViolationValidation, "no fields to update")
	}

	if ctx.PriceSupplied && !IsPriceEditable(ctx.Current) {
		return deny(ViolationInvalidState, "price cannot change once a quotation is %s", ctx.Current)
	}

	if target == nil {
		if ctx.Current != entity.StatusQuoted {
			return deny(ViolationInvalidState, "re-pricing is only allowed while %s", entity.StatusQuoted)
		}
		return allow()
	}

	if *target == entity.StatusPaid {
		return deny(ViolationInvalidState, "status %s is only set by payment confirmation", entity.StatusPaid)
	}

	if !IsStaffForwardStep(ctx.Current, *target) {
		return deny(ViolationInvalidState, "cannot move quotation from %s to %s", ctx.Current, *target)
	}

	if *target == entity.StatusQuoted && !ctx.PricedAfter {
		return deny(ViolationValidation, "total and currency are required to quote")
	}

	return allow()
}

// SettlementContext provides context for the payment confirmation guard.
type SettlementContext struct {
	IsOwner          bool
	Current          entity.QuotationStatus
	ExistingRef      *string
	PaymentReference string
}

// SettlementDecision is the verdict of CanSettle.
// AlreadySettled marks a retry that must succeed without writing.
type SettlementDecision struct {
	GuardResult
	AlreadySettled bool
}

// CanSettle evaluates whether a payment confirmation may mark a quotation paid.
// Rules:
// - Payment reference must be present
// - Caller must own the quotation
// - Quoted rows transition; settled rows accept only their own reference again
func CanSettle(ctx SettlementContext) SettlementDecision {
	if ctx.PaymentReference == "" {
		return SettlementDecision{GuardResult: deny(ViolationValidation, "payment reference is required")}
	}

	if !ctx.IsOwner {
		return SettlementDecision{GuardResult: deny(ViolationForbidden, "not permitted")}
	}

	if ctx.Current == entity.StatusQuoted {
		return SettlementDecision{GuardResult: allow()}
	}

	if Rank(ctx.Current) > Rank(entity.StatusQuoted) {
		if ctx.ExistingRef != nil && *ctx.ExistingRef == ctx.PaymentReference {
			return SettlementDecision{GuardResult: allow(), AlreadySettled: true}
		}

		return SettlementDecision{GuardResult: deny(ViolationConflict, "quotation is already settled with a different payment reference")}
	}

	return SettlementDecision{GuardResult: deny(ViolationInvalidState, "cannot pay a quotation in status %s", ctx.Current)}
}

// CancelContext provides context for the cancellation guard.
type CancelContext struct {
	IsOwner bool
	Current entity.QuotationStatus
}

// CanCancel evaluates whether the caller may delete a quotation.
// Rules:
// - Caller must own the quotation (staff has no cancellation path)
// - Status must be cancellable
func CanCancel(ctx CancelContext) GuardResult {
	if !ctx.IsOwner {
		return deny(ViolationForbidden, "not permitted")
	}

	if !IsCancellable(ctx.Current) {
		return deny(ViolationInvalidState, "cannot cancel a quotation in status %s", ctx.Current)
	}

	return allow()
}

// ReadContext provides context for read access to a single quotation.
type ReadContext struct {
	IsStaff bool
	IsOwner bool
}

// CanRead evaluates whether the caller may see a quotation.
func CanRead(ctx ReadContext) GuardResult {
	if ctx.IsStaff || ctx.IsOwner {
		return allow()
	}

	return deny(ViolationForbidden, "not permitted")
}
