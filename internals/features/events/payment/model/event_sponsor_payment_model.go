package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One row per (event, sponsor) pair; doubles as the membership relation.
type EventSponsorPaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentEventID  uuid.UUID `gorm:"column:payment_event_id;type:uuid;not null;uniqueIndex:ux_event_sponsor_pair,priority:1" json:"payment_event_id"`
	PaymentSponsorID uuid.UUID `gorm:"column:payment_sponsor_id;type:uuid;not null;uniqueIndex:ux_event_sponsor_pair,priority:2;index:idx_event_sponsor_payments_sponsor" json:"payment_sponsor_id"`

	PaymentDonation        float64 `gorm:"column:payment_donation;type:numeric(14,2);default:0" json:"payment_donation"`
	PaymentAdvanceDonation float64 `gorm:"column:payment_advance_donation;type:numeric(14,2);default:0" json:"payment_advance_donation"`
	PaymentGST             float64 `gorm:"column:payment_gst;type:numeric(14,2);default:0" json:"payment_gst"`
	PaymentFinalAmount     float64 `gorm:"column:payment_final_amount;type:numeric(14,2);default:0" json:"payment_final_amount"`

	PaymentIsPaid     bool           `gorm:"column:payment_is_paid;default:false" json:"payment_is_paid"`
	PaymentReceiptURL *string        `gorm:"column:payment_receipt_url;type:text" json:"payment_receipt_url,omitempty"`
	PaymentInvoiceURL *string        `gorm:"column:payment_invoice_url;type:text" json:"payment_invoice_url,omitempty"`
	PaymentReceipts   datatypes.JSON `gorm:"column:payment_receipts;type:jsonb" json:"payment_receipts"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;type:timestamptz;autoUpdateTime" json:"payment_updated_at"`
}

func (EventSponsorPaymentModel) TableName() string {
	return "event_sponsor_payments"
}
