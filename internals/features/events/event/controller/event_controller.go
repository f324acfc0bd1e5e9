package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	artistDTO "oasisevents_backend/internals/features/events/artist/dto"
	artistModel "oasisevents_backend/internals/features/events/artist/model"
	"oasisevents_backend/internals/features/events/event/dto"
	"oasisevents_backend/internals/features/events/event/model"
	"oasisevents_backend/internals/features/events/event/service"
	paymentModel "oasisevents_backend/internals/features/events/payment/model"
	sponsorDTO "oasisevents_backend/internals/features/events/sponsor/dto"
	sponsorModel "oasisevents_backend/internals/features/events/sponsor/model"
	helper "oasisevents_backend/internals/helpers"
)

const eventListLimit = 20

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// participantsFor loads the joined artist and sponsor views for a set of
// events in four queries regardless of how many events are in the page.
func (ctrl *EventController) participantsFor(eventIDs []uuid.UUID) (map[uuid.UUID][]artistDTO.ArtistResponse, map[uuid.UUID][]sponsorDTO.SponsorResponse, error) {
	artistsByEvent := make(map[uuid.UUID][]artistDTO.ArtistResponse, len(eventIDs))
	sponsorsByEvent := make(map[uuid.UUID][]sponsorDTO.SponsorResponse, len(eventIDs))
	if len(eventIDs) == 0 {
		return artistsByEvent, sponsorsByEvent, nil
	}

	var artistRows []paymentModel.EventArtistPaymentModel
	if err := ctrl.DB.
		Select("payment_event_id", "payment_artist_id").
		Where("payment_event_id IN ?", eventIDs).
		Find(&artistRows).Error; err != nil {
		return nil, nil, err
	}
	var sponsorRows []paymentModel.EventSponsorPaymentModel
	if err := ctrl.DB.
		Select("payment_event_id", "payment_sponsor_id").
		Where("payment_event_id IN ?", eventIDs).
		Find(&sponsorRows).Error; err != nil {
		return nil, nil, err
	}

	artistIDs := make([]uuid.UUID, 0, len(artistRows))
	for _, r := range artistRows {
		artistIDs = append(artistIDs, r.PaymentArtistID)
	}
	sponsorIDs := make([]uuid.UUID, 0, len(sponsorRows))
	for _, r := range sponsorRows {
		sponsorIDs = append(sponsorIDs, r.PaymentSponsorID)
	}

	artists := map[uuid.UUID]artistModel.ArtistModel{}
	if len(artistIDs) > 0 {
		var list []artistModel.ArtistModel
		if err := ctrl.DB.Where("artist_id IN ?", artistIDs).Find(&list).Error; err != nil {
			return nil, nil, err
		}
		for i := range list {
			artists[list[i].ArtistID] = list[i]
		}
	}
	sponsors := map[uuid.UUID]sponsorModel.SponsorModel{}
	if len(sponsorIDs) > 0 {
		var list []sponsorModel.SponsorModel
		if err := ctrl.DB.Where("sponsor_id IN ?", sponsorIDs).Find(&list).Error; err != nil {
			return nil, nil, err
		}
		for i := range list {
			sponsors[list[i].SponsorID] = list[i]
		}
	}

	for _, r := range artistRows {
		if a, ok := artists[r.PaymentArtistID]; ok {
			artistsByEvent[r.PaymentEventID] = append(artistsByEvent[r.PaymentEventID], artistDTO.ToArtistResponse(&a, nil))
		}
	}
	for _, r := range sponsorRows {
		if s, ok := sponsors[r.PaymentSponsorID]; ok {
			sponsorsByEvent[r.PaymentEventID] = append(sponsorsByEvent[r.PaymentEventID], sponsorDTO.ToSponsorResponse(&s, nil))
		}
	}
	return artistsByEvent, sponsorsByEvent, nil
}

func (ctrl *EventController) respondWithEvent(c *fiber.Ctx, status int, message string, event *model.EventModel) error {
	artistsByEvent, sponsorsByEvent, err := ctrl.participantsFor([]uuid.UUID{event.EventID})
	if err != nil {
		return helper.JsonServerError(c, "Failed to load event participants", err)
	}
	resp := dto.ToEventResponse(event, artistsByEvent[event.EventID], sponsorsByEvent[event.EventID])
	switch status {
	case fiber.StatusCreated:
		return helper.JsonCreated(c, message, resp)
	default:
		return helper.JsonUpdated(c, message, resp)
	}
}

// 🟢 POST /api/create-new-event
// Event row and its participant ledger rows are created atomically.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	artistIDs, sponsorIDs, err := req.ParseMembership()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	event := req.ToModel()
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		if err := service.ReconcileArtists(tx, event.EventID, nil, artistIDs); err != nil {
			return err
		}
		return service.ReconcileSponsors(tx, event.EventID, nil, sponsorIDs)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return ctrl.respondWithEvent(c, fiber.StatusCreated, "Event created successfully", event)
}

// 🟢 GET /api/get-events?name=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.EventModel{})
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		q = q.Where("event_name ILIKE ?", "%"+name+"%")
	}

	var events []model.EventModel
	if err := q.Order("event_created_at DESC").Limit(eventListLimit).Find(&events).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch events", err)
	}

	ids := make([]uuid.UUID, 0, len(events))
	for i := range events {
		ids = append(ids, events[i].EventID)
	}
	artistsByEvent, sponsorsByEvent, err := ctrl.participantsFor(ids)
	if err != nil {
		return helper.JsonServerError(c, "Failed to load event participants", err)
	}

	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.ToEventResponse(&events[i], artistsByEvent[events[i].EventID], sponsorsByEvent[events[i].EventID]))
	}
	return helper.JsonOK(c, "Events fetched successfully", out)
}

// 🟢 GET /api/get-events-payment?event_id=
// Both ledgers of one event, for the payment dashboard.
func (ctrl *EventController) GetEventPayments(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("event_id"))
	eventID, err := uuid.Parse(raw)
	if raw == "" || err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "event_id is not a valid ID")
	}

	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonServerError(c, "Failed to load event", err)
	}

	var artistPayments []paymentModel.EventArtistPaymentModel
	if err := ctrl.DB.
		Where("payment_event_id = ?", eventID).
		Order("payment_created_at ASC").
		Find(&artistPayments).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch artist payments", err)
	}
	var sponsorPayments []paymentModel.EventSponsorPaymentModel
	if err := ctrl.DB.
		Where("payment_event_id = ?", eventID).
		Order("payment_created_at ASC").
		Find(&sponsorPayments).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch sponsor payments", err)
	}

	return helper.JsonOK(c, "Event payments fetched successfully", fiber.Map{
		"event_id":         event.EventID,
		"event_name":       event.EventName,
		"artist_payments":  artistPayments,
		"sponsor_payments": sponsorPayments,
	})
}

// 🟡 PUT /api/update-event/:id
// Membership lists are reconciled by diff: untouched pairs keep their
// payment history, removed pairs lose their ledger rows.
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	newArtists, newSponsors, err := req.ParseMembership()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonServerError(c, "Failed to load event", err)
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		oldArtists, err := service.ArtistMembership(tx, eventID)
		if err != nil {
			return err
		}
		oldSponsors, err := service.SponsorMembership(tx, eventID)
		if err != nil {
			return err
		}

		event.EventName = strings.TrimSpace(req.EventName)
		event.EventDate = req.EventDate
		event.EventPreparationFinished = req.EventPreparationFinished
		if err := tx.Save(&event).Error; err != nil {
			return err
		}

		if err := service.ReconcileArtists(tx, eventID, oldArtists, newArtists); err != nil {
			return err
		}
		return service.ReconcileSponsors(tx, eventID, oldSponsors, newSponsors)
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return ctrl.respondWithEvent(c, fiber.StatusOK, "Event updated successfully", &event)
}
