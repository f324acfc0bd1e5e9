package model

import (
	"time"

	"github.com/google/uuid"
)

// Bill-type tags. Periodic sub-ledgers carry a global sequential bill number,
// monthly sub-ledgers a month name and year derived from their start date.
const (
	BillTypeConsultingFeesByOasis         = "consultingFeesByOasis"
	BillTypeDsmAdviceBills                = "dsmAdviceBills"
	BillTypeForecastingAndSchedulingBills = "forecastingAndSchedulingBills"
	BillTypeConsultingFeesByEnrich        = "consultingFeesByEnrich"
	BillTypeAmc                           = "amc"

	BillTypeEnergyInvoice           = "energyInvoice"
	BillTypeElectricityBillForPlant = "electricityBillForPlant"
	BillTypeChallan                 = "challan"
)

var PeriodicBillTypes = []string{
	BillTypeConsultingFeesByOasis,
	BillTypeDsmAdviceBills,
	BillTypeForecastingAndSchedulingBills,
	BillTypeConsultingFeesByEnrich,
	BillTypeAmc,
}

var MonthlyBillTypes = []string{
	BillTypeEnergyInvoice,
	BillTypeElectricityBillForPlant,
	BillTypeChallan,
}

// BillFamily is the closed two-way classification of a bill-type tag.
type BillFamily int

const (
	FamilyUnknown BillFamily = iota
	FamilyPeriodic
	FamilyMonthly
)

// ClassifyBillType maps a caller-supplied tag onto its family.
func ClassifyBillType(billType string) BillFamily {
	for _, t := range PeriodicBillTypes {
		if t == billType {
			return FamilyPeriodic
		}
	}
	for _, t := range MonthlyBillTypes {
		if t == billType {
			return FamilyMonthly
		}
	}
	return FamilyUnknown
}

// AllBillTypes, periodic first, for the grouped single-plant view.
func AllBillTypes() []string {
	out := make([]string, 0, len(PeriodicBillTypes)+len(MonthlyBillTypes))
	out = append(out, PeriodicBillTypes...)
	out = append(out, MonthlyBillTypes...)
	return out
}

// One bill row per sub-ledger entry. BillNo is set for the periodic family,
// Month/Year for the monthly family; never both.
type PlantBillModel struct {
	BillID      uuid.UUID `gorm:"column:bill_id;type:uuid;default:gen_random_uuid();primaryKey" json:"bill_id"`
	BillPlantID uuid.UUID `gorm:"column:bill_plant_id;type:uuid;not null;index:idx_plant_bills_plant_type,priority:1" json:"bill_plant_id"`
	BillType    string    `gorm:"column:bill_type;type:varchar(40);not null;index:idx_plant_bills_plant_type,priority:2" json:"bill_type"`

	BillNo    *int64  `gorm:"column:bill_no;type:bigint" json:"bill_no,omitempty"`
	BillMonth *string `gorm:"column:bill_month;type:varchar(16)" json:"bill_month,omitempty"`
	BillYear  *int    `gorm:"column:bill_year" json:"bill_year,omitempty"`

	BillStartDate         time.Time `gorm:"column:bill_start_date;type:timestamptz;not null" json:"bill_start_date"`
	BillEndDate           time.Time `gorm:"column:bill_end_date;type:timestamptz;not null" json:"bill_end_date"`
	BillFinalAmount       float64   `gorm:"column:bill_final_amount;type:numeric(14,2);not null" json:"bill_final_amount"`
	BillMaintenanceAmount float64   `gorm:"column:bill_maintenance_amount;type:numeric(14,2);default:0" json:"bill_maintenance_amount"`

	BillIsPaid               bool    `gorm:"column:bill_is_paid;default:false" json:"bill_is_paid"`
	BillReceiptURL           string  `gorm:"column:bill_receipt_url;type:text;not null" json:"bill_receipt_url"`
	BillPaymentScreenshotURL *string `gorm:"column:bill_payment_screenshot_url;type:text" json:"bill_payment_screenshot_url,omitempty"`

	BillCreatedAt time.Time `gorm:"column:bill_created_at;type:timestamptz;autoCreateTime" json:"bill_created_at"`
	BillUpdatedAt time.Time `gorm:"column:bill_updated_at;type:timestamptz;autoUpdateTime" json:"bill_updated_at"`
}

func (PlantBillModel) TableName() string {
	return "plant_bills"
}
