package model

import (
	"time"

	"github.com/google/uuid"
)

// Participant membership is not stored here: the event↔artist and
// event↔sponsor relations live in the payment-ledger tables, from which both
// "artists of event" and "events of artist" views are derived.
type EventModel struct {
	EventID                  uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventName                string    `gorm:"column:event_name;type:varchar(255);not null" json:"event_name"`
	EventDate                time.Time `gorm:"column:event_date;type:timestamptz;not null" json:"event_date"`
	EventPreparationFinished bool      `gorm:"column:event_preparation_finished;default:false" json:"event_preparation_finished"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
