// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	plantRoute "oasisevents_backend/internals/features/electricity/plant/route"
	artistRoute "oasisevents_backend/internals/features/events/artist/route"
	eventRoute "oasisevents_backend/internals/features/events/event/route"
	paymentRoute "oasisevents_backend/internals/features/events/payment/route"
	sponsorRoute "oasisevents_backend/internals/features/events/sponsor/route"
	billingRoute "oasisevents_backend/internals/features/property/billing/route"
	propertyRoute "oasisevents_backend/internals/features/property/property/route"
	authRoute "oasisevents_backend/internals/features/users/auth/route"
	authMiddleware "oasisevents_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public auth routes...")
	public := app.Group("/api")
	authRoute.AuthPublicRoutes(public, db)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up private /api group (JWT)...")
	api := app.Group("/api",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	authRoute.AuthPrivateRoutes(api, db)

	log.Println("[INFO] Setting up event management routes...")
	artistRoute.ArtistRoutes(api, db)
	sponsorRoute.SponsorRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)

	log.Println("[INFO] Setting up property routes...")
	propertyRoute.PropertyRoutes(api, db)
	billingRoute.BillingRoutes(api, db)

	log.Println("[INFO] Setting up electricity plant routes...")
	plantRoute.PlantRoutes(api, db)
}
