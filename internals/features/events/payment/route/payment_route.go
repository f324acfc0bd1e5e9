package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/events/payment/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	api.Put("/update-artist-events-payment", ctrl.UpdateArtistPayment)
	api.Put("/update-sponsor-events-payment", ctrl.UpdateSponsorPayment)
	api.Put("/upload-artist-payment-receipt", ctrl.UploadArtistReceipt)
	api.Put("/upload-sponsor-payment-receipt", ctrl.UploadSponsorReceipt)
}
