package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/events/artist/dto"
	"oasisevents_backend/internals/features/events/artist/model"
	eventModel "oasisevents_backend/internals/features/events/event/model"
	paymentModel "oasisevents_backend/internals/features/events/payment/model"
	helper "oasisevents_backend/internals/helpers"
)

type ArtistController struct {
	DB *gorm.DB
}

func NewArtistController(db *gorm.DB) *ArtistController {
	return &ArtistController{DB: db}
}

// eventsByArtist resolves the derived membership view for a set of artists.
func (ctrl *ArtistController) eventsByArtist(artistIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(artistIDs))
	if len(artistIDs) == 0 {
		return out, nil
	}
	var rows []paymentModel.EventArtistPaymentModel
	if err := ctrl.DB.
		Select("payment_artist_id", "payment_event_id").
		Where("payment_artist_id IN ?", artistIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.PaymentArtistID] = append(out[r.PaymentArtistID], r.PaymentEventID)
	}
	return out, nil
}

// 🟢 POST /api/create-new-artist
func (ctrl *ArtistController) CreateArtist(c *fiber.Ctx) error {
	var req dto.ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	artist := req.ToModel()
	if err := ctrl.DB.Create(artist).Error; err != nil {
		return helper.JsonServerError(c, "Failed to create artist", err)
	}

	return helper.JsonCreated(c, "Artist created successfully", dto.ToArtistResponse(artist, nil))
}

// 🟢 GET /api/get-artist?name=&role=
func (ctrl *ArtistController) GetArtists(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ArtistModel{})

	if name := strings.TrimSpace(c.Query("name")); name != "" {
		pat := "%" + name + "%"
		q = q.Where("artist_name ILIKE ? OR artist_company_name ILIKE ?", pat, pat)
	}
	if roles := queryMulti(c, "role"); len(roles) > 0 {
		q = q.Where("artist_roles && ?", pq.Array(roles))
	}

	var artists []model.ArtistModel
	if err := q.Order("artist_created_at DESC").Find(&artists).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch artists", err)
	}

	ids := make([]uuid.UUID, 0, len(artists))
	for i := range artists {
		ids = append(ids, artists[i].ArtistID)
	}
	membership, err := ctrl.eventsByArtist(ids)
	if err != nil {
		return helper.JsonServerError(c, "Failed to resolve artist events", err)
	}

	out := make([]dto.ArtistResponse, 0, len(artists))
	for i := range artists {
		out = append(out, dto.ToArtistResponse(&artists[i], membership[artists[i].ArtistID]))
	}
	return helper.JsonOK(c, "Artists fetched successfully", out)
}

// 🟢 GET /api/get-artist-events?artist_id=
func (ctrl *ArtistController) GetArtistEvents(c *fiber.Ctx) error {
	artistID, ferr := parseQueryID(c, "artist_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var artist model.ArtistModel
	if err := ctrl.DB.Where("artist_id = ?", artistID).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artist not found")
		}
		return helper.JsonServerError(c, "Failed to load artist", err)
	}

	var events []eventModel.EventModel
	if err := ctrl.DB.
		Select("events.*").
		Joins("JOIN event_artist_payments ON event_artist_payments.payment_event_id = events.event_id").
		Where("event_artist_payments.payment_artist_id = ?", artistID).
		Order("events.event_date DESC").
		Find(&events).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch artist events", err)
	}

	return helper.JsonOK(c, "Artist events fetched successfully", events)
}

// 🟢 GET /api/get-events-artist-payment?artist_id=
func (ctrl *ArtistController) GetArtistPayments(c *fiber.Ctx) error {
	artistID, ferr := parseQueryID(c, "artist_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var rows []paymentModel.EventArtistPaymentModel
	if err := ctrl.DB.
		Where("payment_artist_id = ?", artistID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch artist payments", err)
	}

	return helper.JsonOK(c, "Artist payments fetched successfully", rows)
}

// 🟡 PUT /api/update-artist/:id
func (ctrl *ArtistController) UpdateArtist(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var req dto.ArtistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var artist model.ArtistModel
	if err := ctrl.DB.Where("artist_id = ?", id).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artist not found")
		}
		return helper.JsonServerError(c, "Failed to load artist", err)
	}

	req.ApplyTo(&artist)
	if err := ctrl.DB.Save(&artist).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update artist", err)
	}

	membership, err := ctrl.eventsByArtist([]uuid.UUID{artist.ArtistID})
	if err != nil {
		return helper.JsonServerError(c, "Failed to resolve artist events", err)
	}
	return helper.JsonUpdated(c, "Artist updated successfully", dto.ToArtistResponse(&artist, membership[artist.ArtistID]))
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
