package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Closed set of sponsor industry tags.
var AllowedSponsorIndustries = []string{
	"Automobile",
	"Technology",
	"Education",
	"Hospitality",
	"Legal",
	"Entertainment",
}

type SponsorModel struct {
	SponsorID                  uuid.UUID      `gorm:"column:sponsor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sponsor_id"`
	SponsorName                string         `gorm:"column:sponsor_name;type:varchar(255);not null" json:"sponsor_name"`
	SponsorIndustries          pq.StringArray `gorm:"column:sponsor_industries;type:text[]" json:"sponsor_industries"`
	SponsorPreparationFinished bool           `gorm:"column:sponsor_preparation_finished;default:false" json:"sponsor_preparation_finished"`
	SponsorPhoneNumber         string         `gorm:"column:sponsor_phone_number;type:varchar(20);not null" json:"sponsor_phone_number"`
	SponsorEmail               string         `gorm:"column:sponsor_email;type:varchar(255);not null" json:"sponsor_email"`
	SponsorAddress             string         `gorm:"column:sponsor_address;type:text;not null" json:"sponsor_address"`
	SponsorGST                 string         `gorm:"column:sponsor_gst;type:varchar(20);not null" json:"sponsor_gst"`

	SponsorCreatedAt time.Time `gorm:"column:sponsor_created_at;type:timestamptz;autoCreateTime" json:"sponsor_created_at"`
	SponsorUpdatedAt time.Time `gorm:"column:sponsor_updated_at;type:timestamptz;autoUpdateTime" json:"sponsor_updated_at"`
}

func (SponsorModel) TableName() string {
	return "sponsors"
}
