package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pustakaku_backend/internals/features/library/book_details/dto"
	"pustakaku_backend/internals/features/library/book_details/model"
	helper "pustakaku_backend/internals/helpers"
)

var validateDetails = validator.New()

type BookDetailsController struct {
	DB *gorm.DB
}

func NewBookDetailsController(db *gorm.DB) *BookDetailsController {
	return &BookDetailsController{DB: db}
}

// =============================
// ➕ Create Book Details
// =============================
func (ctrl *BookDetailsController) CreateBookDetails(c *fiber.Ctx) error {
	var body dto.CreateBookDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDetails.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Required fields are missing. Please provide 'bookID', 'number_of_pages', 'publisher', 'language'.")
	}

	details := model.BookDetailsModel{
		BookID:        body.BookID,
		NumberOfPages: body.NumberOfPages,
		Publisher:     body.Publisher,
		Language:      body.Language,
	}

	// The one-to-one and the book reference are both enforced at the
	// storage layer; intercept the constraint errors here.
	if err := ctrl.DB.Create(&details).Error; err != nil {
		switch {
		case helper.IsDuplicateKey(err):
			log.Printf("[WARN] duplicate book details for book %d (constraint=%s)", body.BookID, helper.ConstraintName(err))
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Book details already exist for book with ID %d.", body.BookID))
		case helper.IsForeignKeyViolation(err):
			log.Printf("[WARN] book details for missing book %d (constraint=%s)", body.BookID, helper.ConstraintName(err))
			return helper.JsonError(c, fiber.StatusBadRequest,
				fmt.Sprintf("Book with ID %d does not exist.", body.BookID))
		default:
			log.Println("[ERROR] failed to create book details:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Book details created successfully", dto.ToBookDetailsDTO(details))
}

// =============================
// 🔍 Get Book Details By ID
// =============================
func (ctrl *BookDetailsController) GetBookDetailsByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the book details do not exist.")
	}

	var details model.BookDetailsModel
	if err := ctrl.DB.First(&details, "details_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the book details with ID %d do not exist.", id))
	}

	return helper.JsonOK(c, "Book details retrieved successfully", dto.ToBookDetailsDTO(details))
}

// =============================
// 🔄 Update Book Details (patch)
// =============================
func (ctrl *BookDetailsController) UpdateBookDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the book details do not exist.")
	}

	var body dto.UpdateBookDetailsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDetails.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "number_of_pages must be a positive integer.")
	}

	var details model.BookDetailsModel
	if err := ctrl.DB.First(&details, "details_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the book details with ID %d do not exist.", id))
	}

	if body.NumberOfPages != nil {
		details.NumberOfPages = *body.NumberOfPages
	}
	if body.Publisher != nil {
		details.Publisher = *body.Publisher
	}
	if body.Language != nil {
		details.Language = *body.Language
	}

	if err := ctrl.DB.Save(&details).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Book details updated successfully", dto.ToBookDetailsDTO(details))
}

// =============================
// 🗑️ Delete Book Details
// =============================
func (ctrl *BookDetailsController) DeleteBookDetails(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the book details do not exist.")
	}

	var details model.BookDetailsModel
	if err := ctrl.DB.First(&details, "details_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the book details with ID %d do not exist.", id))
	}

	if err := ctrl.DB.Delete(&details).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
