// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	detailsRoute "pustakaku_backend/internals/features/library/book_details/route"
	bookRoute "pustakaku_backend/internals/features/library/books/route"
	borrowRoute "pustakaku_backend/internals/features/library/borrowings/route"
	authRoute "pustakaku_backend/internals/features/users/auth/route"
	userRoute "pustakaku_backend/internals/features/users/user/route"
	authMiddleware "pustakaku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/users/list/", fiber.StatusFound)
	})

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// registration is public, the rest of /users is guarded inside
	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up library routes (token guarded)...")
	protected := app.Group("/", authMiddleware.TokenAuth(db))

	bookRoute.BookRoutes(protected, db)
	detailsRoute.BookDetailsRoutes(protected, db)
	borrowRoute.BorrowedBookRoutes(protected, db)
}
