package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/events/payment/dto"
	"oasisevents_backend/internals/features/events/payment/model"
	helper "oasisevents_backend/internals/helpers"
	ossHelper "oasisevents_backend/internals/helpers/oss"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// 🟡 PUT /api/update-artist-events-payment
func (ctrl *PaymentController) UpdateArtistPayment(c *fiber.Ctx) error {
	var req dto.ArtistPaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var row model.EventArtistPaymentModel
	if err := ctrl.DB.
		Where("payment_event_id = ? AND payment_artist_id = ?", req.EventID, req.ArtistID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment record not found")
		}
		return helper.JsonServerError(c, "Failed to load payment record", err)
	}

	if req.PaymentReceiptURL != nil {
		// Recording a payment: numeric fields stay as they are.
		row.PaymentReceiptURL = req.PaymentReceiptURL
		row.PaymentIsPaid = true
	} else {
		if req.Fee != nil {
			row.PaymentFee = *req.Fee
		}
		if req.AdvanceFee != nil {
			row.PaymentAdvanceFee = *req.AdvanceFee
		}
		if req.TDS != nil {
			row.PaymentTDS = *req.TDS
		}
		if req.FinalAmount != nil {
			row.PaymentFinalAmount = *req.FinalAmount
		}
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update payment record", err)
	}
	return helper.JsonUpdated(c, "Artist payment updated successfully", row)
}

// 🟡 PUT /api/update-sponsor-events-payment
func (ctrl *PaymentController) UpdateSponsorPayment(c *fiber.Ctx) error {
	var req dto.SponsorPaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if ferr := helper.ValidateRequest(req); ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}

	var row model.EventSponsorPaymentModel
	if err := ctrl.DB.
		Where("payment_event_id = ? AND payment_sponsor_id = ?", req.EventID, req.SponsorID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment record not found")
		}
		return helper.JsonServerError(c, "Failed to load payment record", err)
	}

	if req.PaymentReceiptURL != nil {
		row.PaymentReceiptURL = req.PaymentReceiptURL
		row.PaymentIsPaid = true
	} else {
		if req.Donation != nil {
			row.PaymentDonation = *req.Donation
		}
		if req.AdvanceDonation != nil {
			row.PaymentAdvanceDonation = *req.AdvanceDonation
		}
		if req.GST != nil {
			row.PaymentGST = *req.GST
		}
		if req.FinalAmount != nil {
			row.PaymentFinalAmount = *req.FinalAmount
		}
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update payment record", err)
	}
	return helper.JsonUpdated(c, "Sponsor payment updated successfully", row)
}

func formUUID(c *fiber.Ctx, key string) (uuid.UUID, *fiber.Error) {
	raw := strings.TrimSpace(c.FormValue(key))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, key+" is not a valid ID")
	}
	return id, nil
}

// 🟡 PUT /api/upload-artist-payment-receipt  (multipart)
// Relays the file to OSS, then appends a numbered installment receipt.
func (ctrl *PaymentController) UploadArtistReceipt(c *fiber.Ctx) error {
	eventID, ferr := formUUID(c, "event_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	artistID, ferr := formUUID(c, "artist_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	fh, err := c.FormFile("receipt")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields: receipt")
	}

	var row model.EventArtistPaymentModel
	if err := ctrl.DB.
		Where("payment_event_id = ? AND payment_artist_id = ?", eventID, artistID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment record not found")
		}
		return helper.JsonServerError(c, "Failed to load payment record", err)
	}

	url, err := ossHelper.UploadFileToOSS("artist-receipts", fh)
	if err != nil {
		return helper.JsonServerError(c, "Failed to upload receipt", err)
	}

	receipts, rec, err := model.AppendReceipt(row.PaymentReceipts, url, time.Now())
	if err != nil {
		return helper.JsonServerError(c, "Failed to record receipt", err)
	}
	row.PaymentReceipts = receipts
	row.PaymentReceiptURL = &url
	row.PaymentIsPaid = true

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update payment record", err)
	}

	return helper.JsonUpdated(c, "Receipt uploaded successfully", fiber.Map{
		"payment": row,
		"receipt": rec,
	})
}

// 🟡 PUT /api/upload-sponsor-payment-receipt  (multipart)
// mode=invoice overwrites the single invoice URL instead of appending an
// installment receipt.
func (ctrl *PaymentController) UploadSponsorReceipt(c *fiber.Ctx) error {
	eventID, ferr := formUUID(c, "event_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	sponsorID, ferr := formUUID(c, "sponsor_id")
	if ferr != nil {
		return helper.JsonError(c, ferr.Code, ferr.Message)
	}
	fh, err := c.FormFile("receipt")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields: receipt")
	}

	var row model.EventSponsorPaymentModel
	if err := ctrl.DB.
		Where("payment_event_id = ? AND payment_sponsor_id = ?", eventID, sponsorID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment record not found")
		}
		return helper.JsonServerError(c, "Failed to load payment record", err)
	}

	url, err := ossHelper.UploadFileToOSS("sponsor-receipts", fh)
	if err != nil {
		return helper.JsonServerError(c, "Failed to upload receipt", err)
	}

	if strings.EqualFold(strings.TrimSpace(c.FormValue("mode")), "invoice") {
		if row.PaymentInvoiceURL != nil && *row.PaymentInvoiceURL != "" {
			// replaced invoice; old object is garbage now
			if svc, e := ossHelper.NewOSSServiceFromEnv(""); e == nil {
				_ = svc.DeleteByPublicURL(c.Context(), *row.PaymentInvoiceURL)
			}
		}
		row.PaymentInvoiceURL = &url
		if err := ctrl.DB.Save(&row).Error; err != nil {
			return helper.JsonServerError(c, "Failed to update payment record", err)
		}
		return helper.JsonUpdated(c, "Invoice uploaded successfully", row)
	}

	receipts, rec, err := model.AppendReceipt(row.PaymentReceipts, url, time.Now())
	if err != nil {
		return helper.JsonServerError(c, "Failed to record receipt", err)
	}
	row.PaymentReceipts = receipts
	row.PaymentReceiptURL = &url
	row.PaymentIsPaid = true

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonServerError(c, "Failed to update payment record", err)
	}

	return helper.JsonUpdated(c, "Receipt uploaded successfully", fiber.Map{
		"payment": row,
		"receipt": rec,
	})
}
