package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	artistDTO "oasisevents_backend/internals/features/events/artist/dto"
	eventModel "oasisevents_backend/internals/features/events/event/model"
	sponsorDTO "oasisevents_backend/internals/features/events/sponsor/dto"
)

type EventRequest struct {
	EventName                string    `json:"event_name" validate:"required"`
	EventDate                time.Time `json:"event_date" validate:"required"`
	Artists                  []string  `json:"artists"`
	Sponsors                 []string  `json:"sponsors"`
	EventPreparationFinished bool      `json:"event_preparation_finished"`
}

// ParseMembership validates the artist/sponsor ID lists as UUIDs.
func (r *EventRequest) ParseMembership() (artists, sponsors []uuid.UUID, err error) {
	artists, err = parseIDList(r.Artists, "artists")
	if err != nil {
		return nil, nil, err
	}
	sponsors, err = parseIDList(r.Sponsors, "sponsors")
	if err != nil {
		return nil, nil, err
	}
	return artists, sponsors, nil
}

func parseIDList(raw []string, field string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	seen := map[uuid.UUID]struct{}{}
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, field+" must be an array of valid IDs")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func (r *EventRequest) ToModel() *eventModel.EventModel {
	return &eventModel.EventModel{
		EventName:                strings.TrimSpace(r.EventName),
		EventDate:                r.EventDate,
		EventPreparationFinished: r.EventPreparationFinished,
	}
}

type EventResponse struct {
	EventID                  uuid.UUID                   `json:"event_id"`
	EventName                string                      `json:"event_name"`
	EventDate                time.Time                   `json:"event_date"`
	EventPreparationFinished bool                        `json:"event_preparation_finished"`
	Artists                  []artistDTO.ArtistResponse  `json:"artists"`
	Sponsors                 []sponsorDTO.SponsorResponse `json:"sponsors"`
	CreatedAt                time.Time                   `json:"created_at"`
}

func ToEventResponse(m *eventModel.EventModel, artists []artistDTO.ArtistResponse, sponsors []sponsorDTO.SponsorResponse) EventResponse {
	if artists == nil {
		artists = []artistDTO.ArtistResponse{}
	}
	if sponsors == nil {
		sponsors = []sponsorDTO.SponsorResponse{}
	}
	return EventResponse{
		EventID:                  m.EventID,
		EventName:                m.EventName,
		EventDate:                m.EventDate,
		EventPreparationFinished: m.EventPreparationFinished,
		Artists:                  artists,
		Sponsors:                 sponsors,
		CreatedAt:                m.EventCreatedAt,
	}
}
