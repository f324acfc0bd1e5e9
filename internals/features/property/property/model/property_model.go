package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyModel struct {
	PropertyID                 uuid.UUID `gorm:"column:property_id;type:uuid;default:gen_random_uuid();primaryKey" json:"property_id"`
	PropertyBuildName          string    `gorm:"column:property_build_name;type:varchar(255);not null" json:"property_build_name"`
	PropertyTenantName         string    `gorm:"column:property_tenant_name;type:varchar(255);not null" json:"property_tenant_name"`
	PropertyRent               float64   `gorm:"column:property_rent;type:numeric(14,2);not null" json:"property_rent"`
	PropertyMaintenanceAmount  float64   `gorm:"column:property_maintenance_amount;type:numeric(14,2);not null" json:"property_maintenance_amount"`
	PropertyStartDate          time.Time `gorm:"column:property_start_date;type:timestamptz;not null" json:"property_start_date"`
	PropertyEndDate            time.Time `gorm:"column:property_end_date;type:timestamptz;not null" json:"property_end_date"`
	PropertyAadharNumber       string    `gorm:"column:property_aadhar_number;type:varchar(20);not null" json:"property_aadhar_number"`
	PropertyPanNumber          string    `gorm:"column:property_pan_number;type:varchar(20);not null" json:"property_pan_number"`
	PropertyBankAccountNumber  string    `gorm:"column:property_bank_account_number;type:varchar(34);not null" json:"property_bank_account_number"`
	PropertyBankIfscCode       string    `gorm:"column:property_bank_ifsc_code;type:varchar(16);not null" json:"property_bank_ifsc_code"`
	PropertyBankAccountName    string    `gorm:"column:property_bank_account_name;type:varchar(255);not null" json:"property_bank_account_name"`
	PropertyBankAccountType    string    `gorm:"column:property_bank_account_type;type:varchar(10);not null" json:"property_bank_account_type"`
	PropertyGST                *string   `gorm:"column:property_gst;type:varchar(20)" json:"property_gst,omitempty"`
	PropertyNetIncomeGenerated float64   `gorm:"column:property_net_income_generated;type:numeric(14,2);default:0" json:"property_net_income_generated"`

	PropertyCreatedAt time.Time `gorm:"column:property_created_at;type:timestamptz;autoCreateTime" json:"property_created_at"`
	PropertyUpdatedAt time.Time `gorm:"column:property_updated_at;type:timestamptz;autoUpdateTime" json:"property_updated_at"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
