package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// One row per (event, artist) pair. The row is also the membership relation:
// it is created and deleted in lockstep with the event's artist list.
type EventArtistPaymentModel struct {
	PaymentID      uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentEventID uuid.UUID `gorm:"column:payment_event_id;type:uuid;not null;uniqueIndex:ux_event_artist_pair,priority:1" json:"payment_event_id"`
	PaymentArtistID uuid.UUID `gorm:"column:payment_artist_id;type:uuid;not null;uniqueIndex:ux_event_artist_pair,priority:2;index:idx_event_artist_payments_artist" json:"payment_artist_id"`

	PaymentFee         float64 `gorm:"column:payment_fee;type:numeric(14,2);default:0" json:"payment_fee"`
	PaymentAdvanceFee  float64 `gorm:"column:payment_advance_fee;type:numeric(14,2);default:0" json:"payment_advance_fee"`
	PaymentTDS         float64 `gorm:"column:payment_tds;type:numeric(14,2);default:0" json:"payment_tds"`
	PaymentFinalAmount float64 `gorm:"column:payment_final_amount;type:numeric(14,2);default:0" json:"payment_final_amount"`

	PaymentIsPaid     bool           `gorm:"column:payment_is_paid;default:false" json:"payment_is_paid"`
	PaymentReceiptURL *string        `gorm:"column:payment_receipt_url;type:text" json:"payment_receipt_url,omitempty"`
	PaymentReceipts   datatypes.JSON `gorm:"column:payment_receipts;type:jsonb" json:"payment_receipts"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;type:timestamptz;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;type:timestamptz;autoUpdateTime" json:"payment_updated_at"`
}

func (EventArtistPaymentModel) TableName() string {
	return "event_artist_payments"
}
