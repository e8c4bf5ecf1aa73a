package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	detailsController "pustakaku_backend/internals/features/library/book_details/controller"
)

func BookDetailsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := detailsController.NewBookDetailsController(db)

	details := api.Group("/book-details")
	details.Post("/create/", ctrl.CreateBookDetails)
	details.Put("/update/:id/", ctrl.UpdateBookDetails)
	details.Delete("/delete/:id/", ctrl.DeleteBookDetails)
	details.Get("/:id/", ctrl.GetBookDetailsByID)
}
