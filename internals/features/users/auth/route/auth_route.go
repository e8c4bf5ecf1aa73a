package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "pustakaku_backend/internals/features/users/auth/controller"
)

// AuthRoutes: public credential endpoint, mirrors the classic
// token-auth login path.
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	app.Post("/api-token-auth/", ctrl.ObtainAuthToken)
}
