// Package model holds the GORM persistence models.
package model

// All returns every model managed by the service, in migration order.
func All() []any {
	return []any{
		&QuotationModel{},
		&ProfileModel{},
		&ContactSubmissionModel{},
	}
}
