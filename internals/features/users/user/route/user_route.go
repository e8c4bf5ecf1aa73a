package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "pustakaku_backend/internals/features/users/user/controller"
	authMiddleware "pustakaku_backend/internals/middlewares/auth"
)

// UserRoutes: registration is the one unauthenticated path; everything
// else sits behind the token guard.
func UserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	app.Post("/users/create/", ctrl.Register)

	users := app.Group("/users", authMiddleware.TokenAuth(db))
	users.Get("/list/", ctrl.List)
	users.Put("/update/:id/", ctrl.Update)
	users.Delete("/delete/:id/", ctrl.Delete)
	users.Get("/:id/", ctrl.GetByID)
}
