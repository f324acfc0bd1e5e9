package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billingModel "oasisevents_backend/internals/features/property/billing/model"
	"oasisevents_backend/internals/features/property/property/dto"
	"oasisevents_backend/internals/features/property/property/model"
	helper "oasisevents_backend/internals/helpers"
)

type PropertyController struct {
	DB *gorm.DB
}

func NewPropertyController(db *gorm.DB) *PropertyController {
	return &PropertyController{DB: db}
}

// 🟢 POST /api/create-new-property
func (ctrl *PropertyController) CreateProperty(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	property := req.ToModel()
	if err := ctrl.DB.Create(property).Error; err != nil {
		return helper.JsonServerError(c, "Failed to create property", err)
	}

	return helper.JsonCreated(c, "Property created successfully", dto.ToPropertyResponse(property, nil))
}

// 🟢 GET /api/get-property?name=
// Filter matches tenant or building name; each property carries its bills.
func (ctrl *PropertyController) GetProperties(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PropertyModel{})
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		pat := "%" + name + "%"
		q = q.Where("property_tenant_name ILIKE ? OR property_build_name ILIKE ?", pat, pat)
	}

	var properties []model.PropertyModel
	if err := q.Order("property_created_at DESC").Find(&properties).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch properties", err)
	}

	ids := make([]uuid.UUID, 0, len(properties))
	for i := range properties {
		ids = append(ids, properties[i].PropertyID)
	}

	byProperty := map[uuid.UUID][]billingModel.PropertyPaymentModel{}
	if len(ids) > 0 {
		var bills []billingModel.PropertyPaymentModel
		if err := ctrl.DB.
			Where("payment_property_id IN ?", ids).
			Order("payment_date DESC").
			Find(&bills).Error; err != nil {
			return helper.JsonServerError(c, "Failed to fetch property payments", err)
		}
		byProperty = dto.PaymentsByProperty(bills)
	}

	out := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, dto.ToPropertyResponse(&properties[i], byProperty[properties[i].PropertyID]))
	}
	return helper.JsonOK(c, "Properties fetched successfully", out)
}

// 🟡 PUT /api/update-property/:id
func (ctrl *PropertyController) UpdateProperty(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid property ID")
	}

	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var property model.PropertyModel
	if err := ctrl.DB.Where("property_id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.JsonServerError(c, "Failed to load property", err)
	}

	req.ApplyTo(&property)
	if err := ctrl.DB.Save(&property).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update property", err)
	}

	var bills []billingModel.PropertyPaymentModel
	if err := ctrl.DB.
		Where("payment_property_id = ?", property.PropertyID).
		Order("payment_date DESC").
		Find(&bills).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch property payments", err)
	}
	return helper.JsonUpdated(c, "Property updated successfully", dto.ToPropertyResponse(&property, bills))
}
