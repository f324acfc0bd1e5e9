package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"oasisevents_backend/internals/features/events/sponsor/model"
)

type SponsorRequest struct {
	SponsorName              string   `json:"sponsor_name" validate:"required"`
	SponsorIndustry          []string `json:"sponsor_industry" validate:"omitempty,dive,oneof=Automobile Technology Education Hospitality Legal Entertainment"`
	PhoneNumber              string   `json:"phone_number" validate:"required"`
	EmailId                  string   `json:"email_id" validate:"required,email"`
	Address                  string   `json:"address" validate:"required"`
	GST                      string   `json:"gst" validate:"required"`
	EventPreparationFinished bool     `json:"event_preparation_finished"`
}

// SponsorUpdateRequest: the update variant lets optional fields default to
// empty instead of failing validation.
type SponsorUpdateRequest struct {
	SponsorName              string   `json:"sponsor_name" validate:"required"`
	SponsorIndustry          []string `json:"sponsor_industry" validate:"omitempty,dive,oneof=Automobile Technology Education Hospitality Legal Entertainment"`
	PhoneNumber              string   `json:"phone_number"`
	EmailId                  string   `json:"email_id" validate:"omitempty,email"`
	Address                  string   `json:"address"`
	GST                      string   `json:"gst"`
	EventPreparationFinished bool     `json:"event_preparation_finished"`
}

func (r *SponsorRequest) ToModel() *model.SponsorModel {
	return &model.SponsorModel{
		SponsorName:                strings.TrimSpace(r.SponsorName),
		SponsorIndustries:          r.SponsorIndustry,
		SponsorPhoneNumber:         strings.TrimSpace(r.PhoneNumber),
		SponsorEmail:               strings.ToLower(strings.TrimSpace(r.EmailId)),
		SponsorAddress:             strings.TrimSpace(r.Address),
		SponsorGST:                 strings.TrimSpace(r.GST),
		SponsorPreparationFinished: r.EventPreparationFinished,
	}
}

func (r *SponsorUpdateRequest) ApplyTo(m *model.SponsorModel) {
	m.SponsorName = strings.TrimSpace(r.SponsorName)
	m.SponsorIndustries = r.SponsorIndustry
	m.SponsorPhoneNumber = strings.TrimSpace(r.PhoneNumber)
	m.SponsorEmail = strings.ToLower(strings.TrimSpace(r.EmailId))
	m.SponsorAddress = strings.TrimSpace(r.Address)
	m.SponsorGST = strings.TrimSpace(r.GST)
	m.SponsorPreparationFinished = r.EventPreparationFinished
}

type SponsorResponse struct {
	SponsorID                uuid.UUID   `json:"sponsor_id"`
	SponsorName              string      `json:"sponsor_name"`
	SponsorIndustry          []string    `json:"sponsor_industry"`
	PhoneNumber              string      `json:"phone_number"`
	EmailId                  string      `json:"email_id"`
	Address                  string      `json:"address"`
	GST                      string      `json:"gst"`
	EventPreparationFinished bool        `json:"event_preparation_finished"`
	Events                   []uuid.UUID `json:"events"`
	CreatedAt                time.Time   `json:"created_at"`
}

func ToSponsorResponse(m *model.SponsorModel, events []uuid.UUID) SponsorResponse {
	if events == nil {
		events = []uuid.UUID{}
	}
	industries := []string(m.SponsorIndustries)
	if industries == nil {
		industries = []string{}
	}
	return SponsorResponse{
		SponsorID:                m.SponsorID,
		SponsorName:              m.SponsorName,
		SponsorIndustry:          industries,
		PhoneNumber:              m.SponsorPhoneNumber,
		EmailId:                  m.SponsorEmail,
		Address:                  m.SponsorAddress,
		GST:                      m.SponsorGST,
		EventPreparationFinished: m.SponsorPreparationFinished,
		Events:                   events,
		CreatedAt:                m.SponsorCreatedAt,
	}
}
