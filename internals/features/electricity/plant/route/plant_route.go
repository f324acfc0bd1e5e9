package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/electricity/plant/controller"
)

func PlantRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPlantController(db)

	api.Post("/create-new-plant", ctrl.CreatePlant)
	api.Get("/get-all-plants", ctrl.GetAllPlants)
	api.Get("/get-single-plants/:id", ctrl.GetSinglePlant)
	api.Put("/update-plant/:id", ctrl.UpdatePlant)

	api.Get("/get-bills-by-type-choice", ctrl.GetBillsByTypeChoice)
	api.Post("/add-bill-by-billtype", ctrl.AddBillByBillType)
	api.Put("/update-bill-payment", ctrl.UpdateBillPayment)
}
