package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	billingModel "oasisevents_backend/internals/features/property/billing/model"
	"oasisevents_backend/internals/features/property/property/model"
)

type PropertyRequest struct {
	BuildName         string    `json:"build_name" validate:"required"`
	TenantName        string    `json:"tenant_name" validate:"required"`
	Rent              float64   `json:"rent" validate:"required"`
	MaintenanceAmount float64   `json:"maintenance_amount" validate:"required"`
	StartDate         time.Time `json:"start_date" validate:"required"`
	EndDate           time.Time `json:"end_date" validate:"required"`
	AadharCardNumber  string    `json:"aadhar_card_number" validate:"required"`
	PancardNumber     string    `json:"pancard_number" validate:"required"`
	BankAccountNumber string    `json:"bank_account_number" validate:"required"`
	BankIfscCode      string    `json:"bank_ifsc_code" validate:"required"`
	BankAccountName   string    `json:"bank_account_name" validate:"required"`
	BankAccountType   string    `json:"bank_account_type" validate:"required,oneof=Savings Current"`
	GST               string    `json:"gst"`
}

func (r *PropertyRequest) ToModel() *model.PropertyModel {
	m := &model.PropertyModel{
		PropertyBuildName:         strings.TrimSpace(r.BuildName),
		PropertyTenantName:        strings.TrimSpace(r.TenantName),
		PropertyRent:              r.Rent,
		PropertyMaintenanceAmount: r.MaintenanceAmount,
		PropertyStartDate:         r.StartDate,
		PropertyEndDate:           r.EndDate,
		PropertyAadharNumber:      strings.TrimSpace(r.AadharCardNumber),
		PropertyPanNumber:         strings.TrimSpace(r.PancardNumber),
		PropertyBankAccountNumber: strings.TrimSpace(r.BankAccountNumber),
		PropertyBankIfscCode:      strings.TrimSpace(r.BankIfscCode),
		PropertyBankAccountName:   strings.TrimSpace(r.BankAccountName),
		PropertyBankAccountType:   r.BankAccountType,
	}
	if gst := strings.TrimSpace(r.GST); gst != "" {
		m.PropertyGST = &gst
	}
	return m
}

// ApplyTo overwrites every field of an existing property, full-replace.
func (r *PropertyRequest) ApplyTo(m *model.PropertyModel) {
	m.PropertyBuildName = strings.TrimSpace(r.BuildName)
	m.PropertyTenantName = strings.TrimSpace(r.TenantName)
	m.PropertyRent = r.Rent
	m.PropertyMaintenanceAmount = r.MaintenanceAmount
	m.PropertyStartDate = r.StartDate
	m.PropertyEndDate = r.EndDate
	m.PropertyAadharNumber = strings.TrimSpace(r.AadharCardNumber)
	m.PropertyPanNumber = strings.TrimSpace(r.PancardNumber)
	m.PropertyBankAccountNumber = strings.TrimSpace(r.BankAccountNumber)
	m.PropertyBankIfscCode = strings.TrimSpace(r.BankIfscCode)
	m.PropertyBankAccountName = strings.TrimSpace(r.BankAccountName)
	m.PropertyBankAccountType = r.BankAccountType
	if gst := strings.TrimSpace(r.GST); gst != "" {
		m.PropertyGST = &gst
	} else {
		m.PropertyGST = nil
	}
}

type PropertyResponse struct {
	model.PropertyModel
	Payments []billingModel.PropertyPaymentModel `json:"payments"`
}

func ToPropertyResponse(m *model.PropertyModel, payments []billingModel.PropertyPaymentModel) PropertyResponse {
	if payments == nil {
		payments = []billingModel.PropertyPaymentModel{}
	}
	return PropertyResponse{PropertyModel: *m, Payments: payments}
}

// PaymentsByProperty groups bill rows under their owning property.
func PaymentsByProperty(rows []billingModel.PropertyPaymentModel) map[uuid.UUID][]billingModel.PropertyPaymentModel {
	out := make(map[uuid.UUID][]billingModel.PropertyPaymentModel)
	for _, r := range rows {
		out[r.PaymentPropertyID] = append(out[r.PaymentPropertyID], r)
	}
	return out
}
