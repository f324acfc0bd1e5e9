package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/property/property/controller"
)

func PropertyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPropertyController(db)

	api.Post("/create-new-property", ctrl.CreateProperty)
	api.Get("/get-property", ctrl.GetProperties)
	api.Put("/update-property/:id", ctrl.UpdateProperty)
}
