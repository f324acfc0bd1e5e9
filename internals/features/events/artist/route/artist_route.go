package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/features/events/artist/controller"
)

func ArtistRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArtistController(db)

	api.Post("/create-new-artist", ctrl.CreateArtist)
	api.Get("/get-artist", ctrl.GetArtists)
	api.Get("/get-artist-events", ctrl.GetArtistEvents)
	api.Get("/get-events-artist-payment", ctrl.GetArtistPayments)
	api.Put("/update-artist/:id", ctrl.UpdateArtist)
}
