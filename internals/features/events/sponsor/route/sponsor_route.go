package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/events/sponsor/controller"
)

func SponsorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSponsorController(db)

	api.Post("/create-new-sponsor", ctrl.CreateSponsor)
	api.Get("/get-sponsor", ctrl.GetSponsors)
	api.Get("/get-sponsor-events", ctrl.GetSponsorEvents)
	api.Get("/get-events-sponsor-payment", ctrl.GetSponsorPayments)
	api.Put("/update-sponsor/:id", ctrl.UpdateSponsor)
}
