package database

import (
	"log"

	"gorm.io/gorm"

	plantModel "oasisevents_backend/internals/features/electricity/plant/model"
	artistModel "oasisevents_backend/internals/features/events/artist/model"
	eventModel "oasisevents_backend/internals/features/events/event/model"
	paymentModel "oasisevents_backend/internals/features/events/payment/model"
	sponsorModel "oasisevents_backend/internals/features/events/sponsor/model"
	billingModel "oasisevents_backend/internals/features/property/billing/model"
	propertyModel "oasisevents_backend/internals/features/property/property/model"
	authModel "oasisevents_backend/internals/features/users/auth/model"
)

// MigrateAll syncs the schema. gen_random_uuid defaults need pgcrypto on
// Postgres < 13.
func MigrateAll(db *gorm.DB) {
	if err := db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&artistModel.ArtistModel{},
		&sponsorModel.SponsorModel{},
		&eventModel.EventModel{},
		&paymentModel.EventArtistPaymentModel{},
		&paymentModel.EventSponsorPaymentModel{},
		&propertyModel.PropertyModel{},
		&billingModel.PropertyPaymentModel{},
		&plantModel.PlantModel{},
		&plantModel.PlantBillModel{},
		&plantModel.CounterModel{},
	); err != nil {
		log.Fatalf("[ERROR] Failed to migrate database: %v", err)
	}
	log.Println("[INFO] Database migration complete")
}
