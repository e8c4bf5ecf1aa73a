package controller

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pustakaku_backend/internals/features/library/books/dto"
	"pustakaku_backend/internals/features/library/books/model"
	helper "pustakaku_backend/internals/helpers"
	"pustakaku_backend/internals/helpers/dbtime"
)

var validateBook = validator.New()

type BookController struct {
	DB *gorm.DB
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db}
}

func hasRequiredError(err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return true
			}
		}
	}
	return false
}

// validateISBN applies the length rule, then uniqueness excluding
// excludeID (0 = no exclusion). Returns the message for a 400, or "".
func (ctrl *BookController) validateISBN(isbn string, excludeID int) (string, error) {
	if utf8.RuneCountInString(isbn) > model.MaxISBNLength {
		return "ISBN length must be less than 10 characters.", nil
	}
	var count int64
	q := ctrl.DB.Model(&model.BookModel{}).Where("isbn = ?", isbn)
	if excludeID > 0 {
		q = q.Where("book_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "ISBN must be unique.", nil
	}
	return "", nil
}

// =============================
// ➕ Create Book
// =============================
func (ctrl *BookController) CreateBook(c *fiber.Ctx) error {
	var body dto.CreateBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBook.Struct(&body); err != nil {
		if hasRequiredError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest,
				"Required fields are missing. Please provide 'title', 'isbn', 'published_date', 'genre'.")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}

	if msg, err := ctrl.validateISBN(body.ISBN, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	} else if msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	published, err := dbtime.Parse(body.PublishedDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}

	book := model.BookModel{
		Title:         body.Title,
		ISBN:          body.ISBN,
		PublishedDate: published,
		Genre:         body.Genre,
	}

	if err := ctrl.DB.Create(&book).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "ISBN must be unique.")
		}
		log.Println("[ERROR] failed to create book:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Book created successfully", dto.ToBookDTO(book))
}

// =============================
// 📄 List Books (newest first)
// =============================
func (ctrl *BookController) ListBooks(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.Model(&model.BookModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if total == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No books found.")
	}

	p := helper.ResolvePaging(c)
	if p.OutOfRange(total) {
		return helper.JsonError(c, fiber.StatusNotFound, "Invalid page.")
	}

	var books []model.BookModel
	if err := ctrl.DB.Order("book_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&books).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "List of books retrieved successfully",
		dto.ToBookDTOs(books),
		helper.BuildPagination(total, p.Page, len(books)))
}

// =============================
// 🔍 Get Book By ID
// =============================
func (ctrl *BookController) GetBookByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the book does not exist.")
	}

	var book model.BookModel
	if err := ctrl.DB.First(&book, "book_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Book with ID %d does not exist.", id))
	}

	return helper.JsonOK(c, "Book details retrieved successfully", dto.ToBookDTO(book))
}

// =============================
// 🔄 Update Book (patch)
// =============================
func (ctrl *BookController) UpdateBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the book does not exist.")
	}

	var body dto.UpdateBookRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBook.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}

	var book model.BookModel
	if err := ctrl.DB.First(&book, "book_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the book with ID %d does not exist.", id))
	}

	if body.ISBN != nil {
		if msg, err := ctrl.validateISBN(*body.ISBN, book.BookID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		} else if msg != "" {
			return helper.JsonError(c, fiber.StatusBadRequest, msg)
		}
		book.ISBN = *body.ISBN
	}
	if body.Title != nil {
		book.Title = *body.Title
	}
	if body.PublishedDate != nil {
		published, err := dbtime.Parse(*body.PublishedDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		}
		book.PublishedDate = published
	}
	if body.Genre != nil {
		book.Genre = *body.Genre
	}

	if err := ctrl.DB.Save(&book).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "ISBN must be unique.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Book updated successfully!", dto.ToBookDTO(book))
}

// =============================
// 🗑️ Delete Book
// =============================
func (ctrl *BookController) DeleteBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the book does not exist.")
	}

	var book model.BookModel
	if err := ctrl.DB.First(&book, "book_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the book with ID %d does not exist.", id))
	}

	// Details and borrow records follow via FK cascade.
	if err := ctrl.DB.Delete(&book).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
