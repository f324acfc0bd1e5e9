package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/property/billing/dto"
	"oasisevents_backend/internals/features/property/billing/model"
	"oasisevents_backend/internals/features/property/billing/service"
	propertyModel "oasisevents_backend/internals/features/property/property/model"
	helper "oasisevents_backend/internals/helpers"
	ossHelper "oasisevents_backend/internals/helpers/oss"
)

type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}

// 🟢 POST /api/create-new-monthly-bill
// Generates the recurring bill for one (property, month); 409 if it already
// exists. Amounts come from the property's rent and maintenance.
func (ctrl *BillingController) GenerateMonthlyBill(c *fiber.Ctx) error {
	var req dto.MonthlyBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var property propertyModel.PropertyModel
	if err := ctrl.DB.Where("property_id = ?", req.PropertyID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.JsonServerError(c, "Failed to load property", err)
	}

	month := strings.TrimSpace(req.Month)
	var existing int64
	if err := ctrl.DB.Model(&model.PropertyPaymentModel{}).
		Where("payment_property_id = ? AND payment_month_label = ?", property.PropertyID, month).
		Count(&existing).Error; err != nil {
		return helper.JsonServerError(c, "Failed to check existing bill", err)
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Monthly bill already generated for this month")
	}

	bill := service.ComputeMonthlyBill(property.PropertyRent, property.PropertyMaintenanceAmount)
	row := model.PropertyPaymentModel{
		PaymentPropertyID:        property.PropertyID,
		PaymentMonthLabel:        month,
		PaymentDate:              req.Date,
		PaymentRent:              bill.Rent,
		PaymentGST:               bill.GST,
		PaymentTDS:               bill.TDS,
		PaymentAssessmentBill:    bill.AssessmentBill,
		PaymentFinalAmount:       bill.FinalAmount,
		PaymentMaintenancePayer:  model.PayerTenant,
		PaymentMaintenanceAmount: bill.Maintenance,
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		// Unique index catches the race between check and insert.
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Monthly bill already generated for this month")
		}
		return helper.JsonServerError(c, "Failed to generate monthly bill", err)
	}

	return helper.JsonCreated(c, "Monthly bill generated successfully", row)
}

// 🟡 PUT /api/update-monthly-bill  (multipart)
// Merges the rent, maintenance and electricity components independently, plus
// up to two uploaded documents.
func (ctrl *BillingController) UpdateMonthlyBill(c *fiber.Ctx) error {
	var req dto.MonthlyBillUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var row model.PropertyPaymentModel
	if err := ctrl.DB.Where("payment_id = ?", req.PaymentID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Monthly bill not found")
		}
		return helper.JsonServerError(c, "Failed to load monthly bill", err)
	}

	if req.RentPaid != nil {
		row.PaymentRentPaid = *req.RentPaid
	}
	if req.RentInstallment != nil {
		row.PaymentRentInstallment = *req.RentInstallment
	}
	if req.PendingRent != nil {
		row.PaymentPendingRent = *req.PendingRent
	}
	if req.MaintenancePayer != nil {
		row.PaymentMaintenancePayer = *req.MaintenancePayer
	}
	if req.MaintenanceAmount != nil {
		row.PaymentMaintenanceAmount = *req.MaintenanceAmount
	}
	if req.MaintenanceInstallment != nil {
		row.PaymentMaintenanceInstallment = *req.MaintenanceInstallment
	}
	if req.ElectricityPaid != nil {
		row.PaymentElectricityPaid = *req.ElectricityPaid
	}
	if req.ElectricityInstallment != nil {
		row.PaymentElectricityInstallment = *req.ElectricityInstallment
	}
	if req.ElectricityAmount != nil {
		row.PaymentElectricityAmount = *req.ElectricityAmount
	}

	if fh, err := c.FormFile("payment_screenshot"); err == nil && fh != nil {
		url, err := ossHelper.UploadScreenshotToOSS("property-payments", fh)
		if err != nil {
			return helper.JsonServerError(c, "Failed to upload payment screenshot", err)
		}
		row.PaymentScreenshotURL = &url
	}
	if fh, err := c.FormFile("monthly_bill"); err == nil && fh != nil {
		url, err := ossHelper.UploadFileToOSS("property-bills", fh)
		if err != nil {
			return helper.JsonServerError(c, "Failed to upload monthly bill", err)
		}
		row.PaymentMonthlyBillURL = &url
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update monthly bill", err)
	}
	return helper.JsonUpdated(c, "Monthly bill updated successfully", row)
}

// 🟢 POST /api/make-payment-for-property
// Records a fully specified bill row directly.
func (ctrl *BillingController) MakePayment(c *fiber.Ctx) error {
	var req dto.MakePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	propertyID, _ := uuid.Parse(req.PropertyID)
	var property propertyModel.PropertyModel
	if err := ctrl.DB.Where("property_id = ?", propertyID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Property not found")
		}
		return helper.JsonServerError(c, "Failed to load property", err)
	}

	row := model.PropertyPaymentModel{
		PaymentPropertyID:        property.PropertyID,
		PaymentMonthLabel:        strings.TrimSpace(req.Month),
		PaymentDate:              req.Date,
		PaymentRent:              req.Rent,
		PaymentPendingRent:       req.PendingRent,
		PaymentGST:               req.GST,
		PaymentTDS:               req.TDS,
		PaymentAssessmentBill:    req.AssessmentBill,
		PaymentFinalAmount:       req.FinalAmount,
		PaymentRentPaid:          true,
		PaymentMaintenancePayer:  req.MaintenancePayer,
		PaymentMaintenanceAmount: req.MaintenanceAmount,
		PaymentElectricityPaid:   req.ElectricityPaid,
		PaymentElectricityAmount: req.ElectricityAmount,
	}
	if s := strings.TrimSpace(req.PaymentScreenshot); s != "" {
		row.PaymentScreenshotURL = &s
	}
	if s := strings.TrimSpace(req.MonthlyBill); s != "" {
		row.PaymentMonthlyBillURL = &s
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A payment for this month already exists")
		}
		return helper.JsonServerError(c, "Failed to record payment", err)
	}

	return helper.JsonCreated(c, "Payment recorded successfully", row)
}
