package dto

import "time"

type MonthlyBillRequest struct {
	PropertyID string    `json:"property_id" validate:"required,uuid4"`
	Month      string    `json:"month" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
}

// MonthlyBillUpdateRequest arrives as multipart form fields alongside the
// optional payment_screenshot / monthly_bill files. Pointer fields mean
// "component not touched".
type MonthlyBillUpdateRequest struct {
	PaymentID string `json:"payment_id" form:"payment_id" validate:"required,uuid4"`

	RentPaid        *bool `json:"rent_paid" form:"rent_paid"`
	RentInstallment *bool `json:"rent_installment" form:"rent_installment"`

	MaintenancePayer       *string  `json:"maintenance_payer" form:"maintenance_payer" validate:"omitempty,oneof=Owner Tenant"`
	MaintenanceAmount      *float64 `json:"maintenance_amount" form:"maintenance_amount"`
	MaintenanceInstallment *bool    `json:"maintenance_installment" form:"maintenance_installment"`

	ElectricityPaid        *bool    `json:"electricity_paid" form:"electricity_paid"`
	ElectricityInstallment *bool    `json:"electricity_installment" form:"electricity_installment"`
	ElectricityAmount      *float64 `json:"electricity_amount" form:"electricity_amount"`

	PendingRent *float64 `json:"pending_rent" form:"pending_rent"`
}

// MakePaymentRequest records a full bill row directly, bypassing generation.
type MakePaymentRequest struct {
	PropertyID string    `json:"property_id" validate:"required,uuid4"`
	Month      string    `json:"month" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	Rent       float64   `json:"rent" validate:"required"`

	PendingRent    float64 `json:"pending_rent"`
	GST            float64 `json:"gst"`
	TDS            float64 `json:"tds"`
	AssessmentBill float64 `json:"assessment_bill"`
	FinalAmount    float64 `json:"final_amount" validate:"required"`

	MaintenancePayer  string  `json:"maintenance_payer" validate:"required,oneof=Owner Tenant"`
	MaintenanceAmount float64 `json:"maintenance_amount"`

	ElectricityPaid   bool    `json:"electricity_paid"`
	ElectricityAmount float64 `json:"electricity_amount"`

	PaymentScreenshot string `json:"payment_screenshot"`
	MonthlyBill       string `json:"monthly_bill"`
}
