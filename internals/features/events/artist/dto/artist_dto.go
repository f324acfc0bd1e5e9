package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"oasisevents_backend/internals/features/events/artist/model"
)

type ArtistRequest struct {
	ArtistName               string   `json:"artist_name" validate:"required"`
	CompanyNameOfArtist      string   `json:"company_name_of_artist" validate:"required"`
	AadharCardNumber         string   `json:"aadhar_card_number" validate:"required"`
	PancardNumber            string   `json:"pancard_number" validate:"required"`
	BankAccountNumber        string   `json:"bank_account_number" validate:"required"`
	BankIfscCode             string   `json:"bank_ifsc_code" validate:"required"`
	BankAccountName          string   `json:"bank_account_name" validate:"required"`
	BankAccountType          string   `json:"bank_account_type" validate:"required,oneof=Savings Current"`
	GST                      string   `json:"gst"`
	Roles                    []string `json:"roles" validate:"omitempty,dive,oneof='Lead Singer' 'Background Singer' Director Producer Composer 'Instrument Player'"`
	EventPreparationFinished bool     `json:"event_preparation_finished"`
}

func (r *ArtistRequest) ToModel() *model.ArtistModel {
	m := &model.ArtistModel{
		ArtistName:                strings.TrimSpace(r.ArtistName),
		ArtistCompanyName:         strings.TrimSpace(r.CompanyNameOfArtist),
		ArtistAadharNumber:        strings.TrimSpace(r.AadharCardNumber),
		ArtistPanNumber:           strings.TrimSpace(r.PancardNumber),
		ArtistBankAccountNumber:   strings.TrimSpace(r.BankAccountNumber),
		ArtistBankIfscCode:        strings.TrimSpace(r.BankIfscCode),
		ArtistBankAccountName:     strings.TrimSpace(r.BankAccountName),
		ArtistBankAccountType:     r.BankAccountType,
		ArtistRoles:               r.Roles,
		ArtistPreparationFinished: r.EventPreparationFinished,
	}
	if gst := strings.TrimSpace(r.GST); gst != "" {
		m.ArtistGST = &gst
	}
	return m
}

// ApplyTo overwrites the stored field set (full-replace update semantics).
func (r *ArtistRequest) ApplyTo(m *model.ArtistModel) {
	m.ArtistName = strings.TrimSpace(r.ArtistName)
	m.ArtistCompanyName = strings.TrimSpace(r.CompanyNameOfArtist)
	m.ArtistAadharNumber = strings.TrimSpace(r.AadharCardNumber)
	m.ArtistPanNumber = strings.TrimSpace(r.PancardNumber)
	m.ArtistBankAccountNumber = strings.TrimSpace(r.BankAccountNumber)
	m.ArtistBankIfscCode = strings.TrimSpace(r.BankIfscCode)
	m.ArtistBankAccountName = strings.TrimSpace(r.BankAccountName)
	m.ArtistBankAccountType = r.BankAccountType
	m.ArtistRoles = r.Roles
	m.ArtistPreparationFinished = r.EventPreparationFinished
	m.ArtistGST = nil
	if gst := strings.TrimSpace(r.GST); gst != "" {
		m.ArtistGST = &gst
	}
}

type ArtistResponse struct {
	ArtistID                 uuid.UUID   `json:"artist_id"`
	ArtistName               string      `json:"artist_name"`
	CompanyNameOfArtist      string      `json:"company_name_of_artist"`
	AadharCardNumber         string      `json:"aadhar_card_number"`
	PancardNumber            string      `json:"pancard_number"`
	BankAccountNumber        string      `json:"bank_account_number"`
	BankIfscCode             string      `json:"bank_ifsc_code"`
	BankAccountName          string      `json:"bank_account_name"`
	BankAccountType          string      `json:"bank_account_type"`
	GST                      string      `json:"gst,omitempty"`
	Roles                    []string    `json:"roles"`
	EventPreparationFinished bool        `json:"event_preparation_finished"`
	Events                   []uuid.UUID `json:"events"`
	CreatedAt                time.Time   `json:"created_at"`
}

// ToArtistResponse renders an artist; events is the derived membership view
// (may be nil when the caller did not resolve it).
func ToArtistResponse(m *model.ArtistModel, events []uuid.UUID) ArtistResponse {
	gst := ""
	if m.ArtistGST != nil {
		gst = *m.ArtistGST
	}
	if events == nil {
		events = []uuid.UUID{}
	}
	roles := []string(m.ArtistRoles)
	if roles == nil {
		roles = []string{}
	}
	return ArtistResponse{
		ArtistID:                 m.ArtistID,
		ArtistName:               m.ArtistName,
		CompanyNameOfArtist:      m.ArtistCompanyName,
		AadharCardNumber:         m.ArtistAadharNumber,
		PancardNumber:            m.ArtistPanNumber,
		BankAccountNumber:        m.ArtistBankAccountNumber,
		BankIfscCode:             m.ArtistBankIfscCode,
		BankAccountName:          m.ArtistBankAccountName,
		BankAccountType:          m.ArtistBankAccountType,
		GST:                      gst,
		Roles:                    roles,
		EventPreparationFinished: m.ArtistPreparationFinished,
		Events:                   events,
		CreatedAt:                m.ArtistCreatedAt,
	}
}
