package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pustakaku_backend/internals/features/library/borrowings/dto"
	"pustakaku_backend/internals/features/library/borrowings/model"
	helper "pustakaku_backend/internals/helpers"
	"pustakaku_backend/internals/helpers/dbtime"
)

var validateBorrow = validator.New()

type BorrowedBookController struct {
	DB *gorm.DB
}

func NewBorrowedBookController(db *gorm.DB) *BorrowedBookController {
	return &BorrowedBookController{DB: db}
}

// =============================
// ➕ Borrow Book
// =============================
func (ctrl *BorrowedBookController) BorrowBook(c *fiber.Ctx) error {
	var body dto.BorrowBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBorrow.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Failed to borrow the book: 'userID', 'bookID' and 'borrow_date' are required.")
	}

	borrowDate, err := dbtime.Parse(body.BorrowDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}

	record := model.BorrowedBookModel{
		UserID:     body.UserID,
		BookID:     body.BookID,
		BorrowDate: borrowDate,
		ReturnDate: nil, // open loan
	}

	// User and book existence is the store's referential-integrity
	// check, nothing more.
	if err := ctrl.DB.Create(&record).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			log.Printf("[WARN] borrow with missing reference user=%d book=%d (constraint=%s)",
				body.UserID, body.BookID, helper.ConstraintName(err))
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Failed to borrow the book: user or book does not exist.")
		}
		log.Println("[ERROR] failed to create borrow record:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Book successfully borrowed", dto.ToBorrowedBookDTO(record))
}

// =============================
// 🔍 Get Borrowed Book By ID
// =============================
func (ctrl *BorrowedBookController) GetBorrowedBookByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the borrowed book does not exist.")
	}

	var record model.BorrowedBookModel
	if err := ctrl.DB.First(&record, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the borrowed book with ID %d does not exist.", id))
	}

	return helper.JsonOK(c, "Borrowed book details retrieved successfully", dto.ToBorrowedBookDTO(record))
}

// =============================
// 🔄 Return Borrowed Book
// =============================
func (ctrl *BorrowedBookController) ReturnBorrowedBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the borrowed book does not exist.")
	}

	var body dto.ReturnBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBorrow.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}

	var record model.BorrowedBookModel
	if err := ctrl.DB.First(&record, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the borrowed book with ID %d does not exist.", id))
	}

	// Unconditional assignment: no check against borrow_date, no check
	// that the loan is still open. A second call just overwrites.
	if body.ReturnDate != nil {
		returned, err := dbtime.Parse(*body.ReturnDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		}
		record.ReturnDate = &returned
	} else {
		record.ReturnDate = nil
	}

	if err := ctrl.DB.Model(&record).Update("return_date", record.ReturnDate).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Book return updated successfully", dto.ToBorrowedBookDTO(record))
}

// =============================
// 🗑️ Delete Borrowed Book
// =============================
func (ctrl *BorrowedBookController) DeleteBorrowedBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the borrowed book does not exist.")
	}

	var record model.BorrowedBookModel
	if err := ctrl.DB.First(&record, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the borrowed book with ID %d does not exist.", id))
	}

	if err := ctrl.DB.Delete(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
