package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"oasisevents_backend/internals/features/electricity/plant/model"
)

type PlantRequest struct {
	PlantName string `json:"plant_name" validate:"required"`
}

type PlantUpdateRequest struct {
	PlantName          string   `json:"plant_name"`
	NetIncomeGenerated *float64 `json:"net_income_generated"`
}

// AddBillRequest carries the multipart fields next to the receipt file.
// Dates arrive as strings and are parsed explicitly.
type AddBillRequest struct {
	PlantID           string  `json:"_id" form:"_id" validate:"required,uuid4"`
	BillType          string  `json:"bill_type" form:"bill_type" validate:"required"`
	StartDate         string  `json:"start_date" form:"start_date" validate:"required"`
	EndDate           string  `json:"end_date" form:"end_date" validate:"required"`
	FinalAmount       float64 `json:"final_amount" form:"final_amount" validate:"required"`
	MaintenanceAmount float64 `json:"maintenance_amount" form:"maintenance_amount"`
}

type UpdateBillPaymentRequest struct {
	BillID    string   `json:"bill_id" form:"bill_id" validate:"required,uuid4"`
	IsPaid    *bool    `json:"is_paid" form:"is_paid"`
	Amount    *float64 `json:"final_amount" form:"final_amount"`
	StartDate string   `json:"start_date" form:"start_date"`
}

// ParseDate accepts the two date shapes clients send.
func ParseDate(raw, field string) (time.Time, *fiber.Error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, field+" is not a valid date")
}

type PlantNameResponse struct {
	PlantID   string `json:"plant_id"`
	PlantName string `json:"plant_name"`
}

// PlantResponse groups the plant's bills under their eight type tags; every
// tag is present even when empty.
type PlantResponse struct {
	model.PlantModel
	Bills map[string][]model.PlantBillModel `json:"bills"`
}

func ToPlantResponse(m *model.PlantModel, bills []model.PlantBillModel) PlantResponse {
	grouped := make(map[string][]model.PlantBillModel, 8)
	for _, t := range model.AllBillTypes() {
		grouped[t] = []model.PlantBillModel{}
	}
	for _, b := range bills {
		grouped[b.BillType] = append(grouped[b.BillType], b)
	}
	return PlantResponse{PlantModel: *m, Bills: grouped}
}
