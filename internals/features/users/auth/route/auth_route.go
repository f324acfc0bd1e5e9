package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"oasisevents_backend/internals/constants"
	"oasisevents_backend/internals/features/users/auth/controller"
	authMiddleware "oasisevents_backend/internals/middlewares/auth"
)

// AuthPublicRoutes: no token required.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", ctrl.Login)
	api.Post("/createuser", ctrl.CreateUser)
	api.Post("/login-google", ctrl.LoginGoogle)
	api.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthPrivateRoutes: behind AuthJWT.
func AuthPrivateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Get("/user", ctrl.FetchUser)

	// admin surface; handlers re-check the role themselves
	admin := api.Group("", authMiddleware.RequireRoles(constants.RoleAdmin))
	admin.Get("/fetch-employee", ctrl.FetchEmployees)
	admin.Put("/change-password", ctrl.ChangePassword)
}
