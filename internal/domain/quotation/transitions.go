// Package quotation contains the pure business rules of the quotation lifecycle.
// Nothing here performs I/O; usecases feed observed state in and act on the verdict.
package quotation

import "fabquote/internal/domain/entity"

// lifecycle lists the states in their only permitted order.
var lifecycle = []entity.QuotationStatus{
	entity.StatusPendingReview,
	entity.StatusQuoted,
	entity.StatusPaid,
	entity.StatusInProduction,
	entity.StatusShipped,
	entity.StatusDelivered,
}

// CancellableStatuses are the states from which the owner may delete a quotation.
var CancellableStatuses = []entity.QuotationStatus{
	entity.StatusPendingReview,
	entity.StatusQuoted,
}

// InitialStatus returns the status every new quotation starts in.
func InitialStatus() entity.QuotationStatus {
	return entity.StatusPendingReview
}

// ParseStatus converts a raw value into a known status.
func ParseStatus(raw string) (entity.QuotationStatus, bool) {
	for _, status := range lifecycle {
		if string(status) == raw {
			return status, true
		}
	}

	return "", false
}

// Rank returns the position of a status in the lifecycle, or -1 for unknown values.
func Rank(status entity.QuotationStatus) int {
	for i, s := range lifecycle {
		if s == status {
			return i
		}
	}

	return -1
}

// IsTerminal reports whether no further transition may leave the status.
func IsTerminal(status entity.QuotationStatus) bool {
	return status == entity.StatusDelivered
}

// IsCancellable reports whether a quotation in the status may be deleted by its owner.
func IsCancellable(status entity.QuotationStatus) bool {
	return status == entity.StatusPendingReview || status == entity.StatusQuoted
}

// IsPriceEditable reports whether staff may still change total and currency.
func IsPriceEditable(status entity.QuotationStatus) bool {
	return status == entity.StatusPendingReview || status == entity.StatusQuoted
}

// IsStaffForwardStep reports whether staff may move a quotation from one status to another.
// Paid is reserved for settlement, and the quote step is the only staff move out of Pending Review.
func IsStaffForwardStep(from, to entity.QuotationStatus) bool {
	if Rank(from) < 0 || Rank(to) < 0 {
		return false
	}

	switch from {
	case entity.StatusPendingReview:
		return to == entity.StatusQuoted
	case entity.StatusPaid, entity.StatusInProduction, entity.StatusShipped:
		return Rank(to) > Rank(from)
	default:
		return false
	}
}
