package model

import (
	"time"

	"github.com/google/uuid"
)

// Maintenance payer values.
const (
	PayerOwner  = "Owner"
	PayerTenant = "Tenant"
)

// One generated bill per (property, month). The unique index is the backstop
// behind the 409 duplicate-generation check.
type PropertyPaymentModel struct {
	PaymentID         uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentPropertyID uuid.UUID `gorm:"column:payment_property_id;type:uuid;not null;uniqueIndex:ux_property_month,priority:1" json:"payment_property_id"`
	PaymentMonthLabel string    `gorm:"column:payment_month_label;type:varchar(32);not null;uniqueIndex:ux_property_month,priority:2" json:"payment_month_label"`
	PaymentDate       time.Time `gorm:"column:payment_date;type:timestamptz;not null" json:"payment_date"`

	PaymentRent           float64 `gorm:"column:payment_rent;type:numeric(14,2);not null" json:"payment_rent"`
	PaymentPendingRent    float64 `gorm:"column:payment_pending_rent;type:numeric(14,2);default:0" json:"payment_pending_rent"`
	PaymentGST            float64 `gorm:"column:payment_gst;type:numeric(14,2);not null" json:"payment_gst"`
	PaymentTDS            float64 `gorm:"column:payment_tds;type:numeric(14,2);not null" json:"payment_tds"`
	PaymentAssessmentBill float64 `gorm:"column:payment_assessment_bill;type:numeric(14,2);default:0" json:"payment_assessment_bill"`
	PaymentFinalAmount    float64 `gorm:"column:payment_final_amount;type:numeric(14,2);not null" json:"payment_final_amount"`

	PaymentRentPaid        bool `gorm:"column:payment_rent_paid;default:false" json:"payment_rent_paid"`
	PaymentRentInstallment bool `gorm:"column:payment_rent_installment;default:false" json:"payment_rent_installment"`

	PaymentMaintenancePayer       string  `gorm:"column:payment_maintenance_payer;type:varchar(10);default:'Tenant'" json:"payment_maintenance_payer"`
	PaymentMaintenanceAmount      float64 `gorm:"column:payment_maintenance_amount;type:numeric(14,2);default:0" json:"payment_maintenance_amount"`
	PaymentMaintenanceInstallment bool    `gorm:"column:payment_maintenance_installment;default:false" json:"payment_maintenance_installment"`

	PaymentElectricityPaid        bool    `gorm:"column:payment_electricity_paid;default:false" json:"payment_electricity_paid"`
	PaymentElectricityInstallment bool    `gorm:"column:payment_electricity_installment;default:false" json:"payment_electricity_installment"`
	PaymentElectricityAmount      float64 `gorm:"column:payment_electricity_amount;type:numeric(14,2);default:0" json:"payment_electricity_amount"`

	PaymentScreenshotURL  *string `gorm:"column:payment_screenshot_url;type:text" json:"payment_screenshot_url,omitempty"`
	PaymentMonthlyBillURL *string `gorm:"column:payment_monthly_bill_url;type:text" json:"payment_monthly_bill_url,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;type:timestamptz;autoUpdateTime" json:"payment_updated_at"`
}

func (PropertyPaymentModel) TableName() string {
	return "property_payments"
}
