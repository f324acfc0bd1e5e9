package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	eventModel "oasisevents_backend/internals/features/events/event/model"
	paymentModel "oasisevents_backend/internals/features/events/payment/model"
	"oasisevents_backend/internals/features/events/sponsor/dto"
	"oasisevents_backend/internals/features/events/sponsor/model"
	helper "oasisevents_backend/internals/helpers"
)

type SponsorController struct {
	DB *gorm.DB
}

func NewSponsorController(db *gorm.DB) *SponsorController {
	return &SponsorController{DB: db}
}

func (ctrl *SponsorController) eventsBySponsor(sponsorIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(sponsorIDs))
	if len(sponsorIDs) == 0 {
		return out, nil
	}
	var rows []paymentModel.EventSponsorPaymentModel
	if err := ctrl.DB.
		Select("payment_sponsor_id", "payment_event_id").
		Where("payment_sponsor_id IN ?", sponsorIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.PaymentSponsorID] = append(out[r.PaymentSponsorID], r.PaymentEventID)
	}
	return out, nil
}

// 🟢 POST /api/create-new-sponsor
func (ctrl *SponsorController) CreateSponsor(c *fiber.Ctx) error {
	var req dto.SponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	sponsor := req.ToModel()
	if err := ctrl.DB.Create(sponsor).Error; err != nil {
		return helper.JsonServerError(c, "Failed to create sponsor", err)
	}

	return helper.JsonCreated(c, "Sponsor created successfully", dto.ToSponsorResponse(sponsor, nil))
}

// 🟢 GET /api/get-sponsor?name=&industry=
func (ctrl *SponsorController) GetSponsors(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.SponsorModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		pat := "%" + name + "%"
		q = q.Where("sponsor_name ILIKE ? OR sponsor_email ILIKE ?", pat, pat)
	}
	if industries := queryMulti(c, "industry"); len(industries) > 0 {
		q = q.Where("sponsor_industries && ?", pq.Array(industries))
	}

	var sponsors []model.SponsorModel
	if err := q.Order("sponsor_created_at DESC").Find(&sponsors).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch sponsors", err)
	}

	ids := make([]uuid.UUID, 0, len(sponsors))
	for i := range sponsors {
		ids = append(ids, sponsors[i].SponsorID)
	}
	membership, err := ctrl.eventsBySponsor(ids)
	if err != nil {
		return helper.JsonServerError(c, "Failed to resolve sponsor events", err)
	}

	out := make([]dto.SponsorResponse, 0, len(sponsors))
	for i := range sponsors {
		out = append(out, dto.ToSponsorResponse(&sponsors[i], membership[sponsors[i].SponsorID]))
	}
	return helper.JsonOK(c, "Sponsors fetched successfully", out)
}

// 🟢 GET /api/get-sponsor-events?sponsor_id=
func (ctrl *SponsorController) GetSponsorEvents(c *fiber.Ctx) error {
	sponsorID, ferr := parseQueryID(c, "sponsor_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var sponsor model.SponsorModel
	if err := ctrl.DB.Where("sponsor_id = ?", sponsorID).First(&sponsor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
		}
		return helper.JsonServerError(c, "Failed to load sponsor", err)
	}

	var events []eventModel.EventModel
	if err := ctrl.DB.
		Select("events.*").
		Joins("JOIN event_sponsor_payments ON event_sponsor_payments.payment_event_id = events.event_id").
		Where("event_sponsor_payments.payment_sponsor_id = ?", sponsorID).
		Order("events.event_date DESC").
		Find(&events).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch sponsor events", err)
	}

	return helper.JsonOK(c, "Sponsor events fetched successfully", events)
}

// 🟢 GET /api/get-events-sponsor-payment?sponsor_id=
func (ctrl *SponsorController) GetSponsorPayments(c *fiber.Ctx) error {
	sponsorID, ferr := parseQueryID(c, "sponsor_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var rows []paymentModel.EventSponsorPaymentModel
	if err := ctrl.DB.
		Where("payment_sponsor_id = ?", sponsorID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch sponsor payments", err)
	}

	return helper.JsonOK(c, "Sponsor payments fetched successfully", rows)
}

// 🟡 PUT /api/update-sponsor/:id
// Absent fields reset to their zero value, matching the full-replace contract.
func (ctrl *SponsorController) UpdateSponsor(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sponsor ID")
	}

	var req dto.SponsorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var sponsor model.SponsorModel
	if err := ctrl.DB.Where("sponsor_id = ?", id).First(&sponsor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
		}
		return helper.JsonServerError(c, "Failed to load sponsor", err)
	}

	req.ApplyTo(&sponsor)
	if err := ctrl.DB.Save(&sponsor).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update sponsor", err)
	}

	membership, err := ctrl.eventsBySponsor([]uuid.UUID{sponsor.SponsorID})
	if err != nil {
		return helper.JsonServerError(c, "Failed to resolve sponsor events", err)
	}
	return helper.JsonUpdated(c, "Sponsor updated successfully", dto.ToSponsorResponse(&sponsor, membership[sponsor.SponsorID]))
}

func parseQueryID(c *fiber.Ctx, key string) (uuid.UUID, *fiber.Error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, key+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, key+" is not a valid ID")
	}
	return id, nil
}

func queryMulti(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		if s := strings.TrimSpace(string(v)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
