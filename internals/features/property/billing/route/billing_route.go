package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/property/billing/controller"
)

func BillingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBillingController(db)

	api.Post("/create-new-monthly-bill", ctrl.GenerateMonthlyBill)
	api.Put("/update-monthly-bill", ctrl.UpdateMonthlyBill)
	api.Post("/make-payment-for-property", ctrl.MakePayment)
}
