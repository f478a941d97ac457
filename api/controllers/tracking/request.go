package tracking

import (
	"context"

	"github.com/bahanajar/sitta-backend/api/validators"
	trackingsvc "github.com/bahanajar/sitta-backend/internal/tracking"
)

// formRequest carries the fields of the new-order form. Absent fields keep
// their current value; an empty string clears one.
type formRequest struct {
	StudentID   *string `json:"student_id" validate:"omitempty,max=20"`
	StudentName *string `json:"student_name" validate:"omitempty,max=120"`
	CarrierCode *string `json:"carrier_code" validate:"omitempty,max=20"`
	PackageCode *string `json:"package_code" validate:"omitempty,max=40"`
	ShipDate    *string `json:"ship_date" validate:"omitempty,isodate"`
}

// applyForm writes the request onto the manager's pending form. Carrier and
// package go through their selection operations so the selection is traced.
func applyForm(ctx context.Context, m *trackingsvc.Manager, payload formRequest) {
	form := m.Pending()
	if payload.StudentID != nil {
		form.StudentID = validators.SanitizeString(*payload.StudentID, 0)
	}
	if payload.StudentName != nil {
		form.StudentName = validators.SanitizeString(*payload.StudentName, 0)
	}
	if payload.ShipDate != nil {
		form.ShipDate = validators.SanitizeString(*payload.ShipDate, 0)
	}
	m.SetPending(form)

	if payload.CarrierCode != nil {
		m.SelectCarrier(ctx, validators.SanitizeString(*payload.CarrierCode, 0))
	}
	if payload.PackageCode != nil {
		m.SelectPackage(ctx, validators.SanitizeString(*payload.PackageCode, 0))
	}
}
