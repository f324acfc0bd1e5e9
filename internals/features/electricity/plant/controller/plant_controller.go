package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/electricity/plant/dto"
	"oasisevents_backend/internals/features/electricity/plant/model"
	"oasisevents_backend/internals/features/electricity/plant/service"
	helper "oasisevents_backend/internals/helpers"
	ossHelper "oasisevents_backend/internals/helpers/oss"
)

type PlantController struct {
	DB *gorm.DB
}

func NewPlantController(db *gorm.DB) *PlantController {
	return &PlantController{DB: db}
}

// 🟢 POST /api/create-new-plant
func (ctrl *PlantController) CreatePlant(c *fiber.Ctx) error {
	var req dto.PlantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	name := strings.TrimSpace(req.PlantName)
	var existing int64
	if err := ctrl.DB.Model(&model.PlantModel{}).Where("plant_name = ?", name).Count(&existing).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check plant name", err)
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A plant with this name already exists")
	}

	plant := model.PlantModel{PlantName: name}
	if err := ctrl.DB.Create(&plant).Error; err != nil {
		return helper.JsonServerError(c, "Failed to create plant", err)
	}
	return helper.JsonCreated(c, "Plant created successfully", plant)
}

// 🟢 GET /api/get-all-plants
// Projection of id + name only.
func (ctrl *PlantController) GetAllPlants(c *fiber.Ctx) error {
	var plants []model.PlantModel
	if err := ctrl.DB.
		Select("plant_id", "plant_name").
		Order("plant_created_at DESC").
		Find(&plants).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch plants", err)
	}

	out := make([]dto.PlantNameResponse, 0, len(plants))
	for _, p := range plants {
		out = append(out, dto.PlantNameResponse{PlantID: p.PlantID.String(), PlantName: p.PlantName})
	}
	return helper.JsonOK(c, "Plant names fetched successfully", out)
}

// 🟢 GET /api/get-single-plants/:id
func (ctrl *PlantController) GetSinglePlant(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plant ID")
	}

	var plant model.PlantModel
	if err := ctrl.DB.Where("plant_id = ?", id).First(&plant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plant not found")
		}
		return helper.JsonServerError(c, "Failed to load plant", err)
	}

	var bills []model.PlantBillModel
	if err := ctrl.DB.
		Where("bill_plant_id = ?", plant.PlantID).
		Order("bill_created_at ASC").
		Find(&bills).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch plant bills", err)
	}

	return helper.JsonOK(c, "Plant fetched successfully", dto.ToPlantResponse(&plant, bills))
}

// 🟡 PUT /api/update-plant/:id
func (ctrl *PlantController) UpdatePlant(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plant ID")
	}

	var req dto.PlantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var plant model.PlantModel
	if err := ctrl.DB.Where("plant_id = ?", id).First(&plant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plant not found")
		}
		return helper.JsonServerError(c, "Failed to load plant", err)
	}

	if name := strings.TrimSpace(req.PlantName); name != "" && name != plant.PlantName {
		var clash int64
		if err := ctrl.DB.Model(&model.PlantModel{}).
			Where("plant_name = ? AND plant_id <> ?", name, plant.PlantID).
			Count(&clash).Error; err != nil {
			return helper.JsonServerError(c, "Failed to check plant name", err)
		}
		if clash > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "A plant with this name already exists")
		}
		plant.PlantName = name
	}
	if req.NetIncomeGenerated != nil {
		plant.PlantNetIncomeGenerated = *req.NetIncomeGenerated
	}

	if err := ctrl.DB.Save(&plant).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update plant", err)
	}
	return helper.JsonUpdated(c, "Plant updated successfully", plant)
}

// 🟢 GET /api/get-bills-by-type-choice?_id=&billType=&billNo=
// Unknown billType is 400 even for a valid plant id.
func (ctrl *PlantController) GetBillsByTypeChoice(c *fiber.Ctx) error {
	billType := strings.TrimSpace(c.Query("billType"))
	family := model.ClassifyBillType(billType)
	if family == model.FamilyUnknown {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown billType")
	}

	plantID, err := uuid.Parse(strings.TrimSpace(c.Query("_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "_id is not a valid ID")
	}

	q := ctrl.DB.
		Where("bill_plant_id = ? AND bill_type = ?", plantID, billType)
	if raw := strings.TrimSpace(c.Query("billNo")); raw != "" && family == model.FamilyPeriodic {
		billNo, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "billNo is not a valid number")
		}
		q = q.Where("bill_no = ?", billNo)
	}

	var bills []model.PlantBillModel
	if err := q.Order("bill_created_at ASC").Find(&bills).Error; err != nil {
		return helper.JsonServerError(c, "Failed to fetch bills", err)
	}
	return helper.JsonOK(c, "Bills fetched successfully", bills)
}

// 🟢 POST /api/add-bill-by-billtype  (multipart)
// Periodic bills get the next global bill number, monthly bills a month name
// and year derived from the start date.
func (ctrl *PlantController) AddBillByBillType(c *fiber.Ctx) error {
	var req dto.AddBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	family := model.ClassifyBillType(req.BillType)
	if family == model.FamilyUnknown {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown billType")
	}

	startDate, ferr := dto.ParseDate(req.StartDate, "start_date")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	endDate, ferr := dto.ParseDate(req.EndDate, "end_date")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	plantID, _ := uuid.Parse(req.PlantID)
	var plant model.PlantModel
	if err := ctrl.DB.Where("plant_id = ?", plantID).First(&plant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plant not found")
		}
		return helper.JsonServerError(c, "Failed to load plant", err)
	}

	fh, err := c.FormFile("receipt")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields: receipt")
	}
	receiptURL, err := ossHelper.UploadFileToOSS("plant-bills", fh)
	if err != nil {
		return helper.JsonServerError(c, "Failed to upload receipt", err)
	}

	bill := model.PlantBillModel{
		BillPlantID:           plant.PlantID,
		BillType:              req.BillType,
		BillStartDate:         startDate,
		BillEndDate:           endDate,
		BillFinalAmount:       req.FinalAmount,
		BillMaintenanceAmount: req.MaintenanceAmount,
		BillReceiptURL:        receiptURL,
	}

	switch family {
	case model.FamilyPeriodic:
		no, err := service.NextSeq(ctrl.DB, service.BillNoCounter)
		if err != nil {
			return helper.JsonServerError(c, "Failed to issue bill number", err)
		}
		bill.BillNo = &no
	case model.FamilyMonthly:
		month := startDate.Month().String()
		year := startDate.Year()
		bill.BillMonth = &month
		bill.BillYear = &year
	}

	if err := ctrl.DB.Create(&bill).Error; err != nil {
		return helper.JsonServerError(c, "Failed to add bill", err)
	}
	return helper.JsonCreated(c, "Bill added successfully", bill)
}

// 🟡 PUT /api/update-bill-payment  (multipart)
// Keyed by the bill row's own id, one UPDATE.
func (ctrl *PlantController) UpdateBillPayment(c *fiber.Ctx) error {
	var req dto.UpdateBillPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var bill model.PlantBillModel
	if err := ctrl.DB.Where("bill_id = ?", req.BillID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Bill not found")
		}
		return helper.JsonServerError(c, "Failed to load bill", err)
	}

	if req.IsPaid != nil {
		bill.BillIsPaid = *req.IsPaid
	}
	if req.Amount != nil {
		bill.BillFinalAmount = *req.Amount
	}
	if strings.TrimSpace(req.StartDate) != "" {
		startDate, ferr := dto.ParseDate(req.StartDate, "start_date")
		if ferr != nil {
			return helper.JsonError(c, ferr.Code, ferr.Message)
		}
		bill.BillStartDate = startDate
	}
	if fh, err := c.FormFile("payment_screenshot"); err == nil && fh != nil {
		url, err := ossHelper.UploadScreenshotToOSS("plant-payments", fh)
		if err != nil {
			return helper.JsonServerError(c, "Failed to upload payment screenshot", err)
		}
		bill.BillPaymentScreenshotURL = &url
	}

	if err := ctrl.DB.Save(&bill).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update bill payment", err)
	}
	return helper.JsonUpdated(c, "Bill payment updated successfully", bill)
}
