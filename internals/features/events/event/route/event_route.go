package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/events/event/controller"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	api.Post("/create-new-event", ctrl.CreateEvent)
	api.Get("/get-events", ctrl.GetEvents)
	api.Get("/get-events-payment", ctrl.GetEventPayments)
	api.Put("/update-event/:id", ctrl.UpdateEvent)
}
