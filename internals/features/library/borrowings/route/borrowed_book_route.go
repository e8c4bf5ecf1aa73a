package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	borrowController "pustakaku_backend/internals/features/library/borrowings/controller"
)

func BorrowedBookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := borrowController.NewBorrowedBookController(db)

	api.Post("/borrow/create/", ctrl.BorrowBook)

	borrowed := api.Group("/borrowed")
	borrowed.Put("/return/:id/", ctrl.ReturnBorrowedBook)
	borrowed.Delete("/delete/:id/", ctrl.DeleteBorrowedBook)
	borrowed.Get("/:id/", ctrl.GetBorrowedBookByID)
}
