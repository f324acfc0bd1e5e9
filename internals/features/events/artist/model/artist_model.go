package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Closed set of artist role tags.
var AllowedArtistRoles = []string{
	"Lead Singer",
	"Background Singer",
	"Director",
	"Producer",
	"Composer",
	"Instrument Player",
}

type ArtistModel struct {
	ArtistID                  uuid.UUID      `gorm:"column:artist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"artist_id"`
	ArtistName                string         `gorm:"column:artist_name;type:varchar(255);not null" json:"artist_name"`
	ArtistCompanyName         string         `gorm:"column:artist_company_name;type:varchar(255);not null" json:"artist_company_name"`
	ArtistPreparationFinished bool           `gorm:"column:artist_preparation_finished;default:false" json:"artist_preparation_finished"`
	ArtistAadharNumber        string         `gorm:"column:artist_aadhar_number;type:varchar(20);not null" json:"artist_aadhar_number"`
	ArtistPanNumber           string         `gorm:"column:artist_pan_number;type:varchar(20);not null" json:"artist_pan_number"`
	ArtistBankAccountNumber   string         `gorm:"column:artist_bank_account_number;type:varchar(34);not null" json:"artist_bank_account_number"`
	ArtistBankIfscCode        string         `gorm:"column:artist_bank_ifsc_code;type:varchar(16);not null" json:"artist_bank_ifsc_code"`
	ArtistBankAccountName     string         `gorm:"column:artist_bank_account_name;type:varchar(255);not null" json:"artist_bank_account_name"`
	ArtistBankAccountType     string         `gorm:"column:artist_bank_account_type;type:varchar(10);not null" json:"artist_bank_account_type"`
	ArtistGST                 *string        `gorm:"column:artist_gst;type:varchar(20)" json:"artist_gst,omitempty"`
	ArtistRoles               pq.StringArray `gorm:"column:artist_roles;type:text[]" json:"artist_roles"`

	ArtistCreatedAt time.Time `gorm:"column:artist_created_at;type:timestamptz;autoCreateTime" json:"artist_created_at"`
	ArtistUpdatedAt time.Time `gorm:"column:artist_updated_at;type:timestamptz;autoUpdateTime" json:"artist_updated_at"`
}

func (ArtistModel) TableName() string {
	return "artists"
}
