package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "pustakaku_backend/internals/features/library/books/controller"
)

func BookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := bookController.NewBookController(db)

	books := api.Group("/books")
	books.Post("/create/", ctrl.CreateBook)
	books.Get("/list/", ctrl.ListBooks)
	books.Put("/update/:id/", ctrl.UpdateBook)
	books.Delete("/delete/:id/", ctrl.DeleteBook)
	books.Get("/:id/", ctrl.GetBookByID)
}
