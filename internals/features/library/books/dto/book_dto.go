package dto

import (
	"pustakaku_backend/internals/features/library/books/model"
	"pustakaku_backend/internals/helpers/dbtime"
)

// ============================
// Create & Update Request DTO
// ============================

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	ISBN          string `json:"isbn" validate:"required"`
	PublishedDate string `json:"published_date" validate:"required,datetime=2006-01-02"`
	Genre         string `json:"genre" validate:"required"`
}

// UpdateBookRequest is a patch: nil fields are left untouched.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	ISBN          *string `json:"isbn"`
	PublishedDate *string `json:"published_date" validate:"omitempty,datetime=2006-01-02"`
	Genre         *string `json:"genre"`
}

// ============================
// Response DTO
// ============================

type BookDTO struct {
	BookID        int         `json:"bookID"`
	Title         string      `json:"title"`
	ISBN          string      `json:"isbn"`
	PublishedDate dbtime.Date `json:"published_date"`
	Genre         string      `json:"genre"`
}

// ============================
// Converter
// ============================

func ToBookDTO(m model.BookModel) BookDTO {
	return BookDTO{
		BookID:        m.BookID,
		Title:         m.Title,
		ISBN:          m.ISBN,
		PublishedDate: m.PublishedDate,
		Genre:         m.Genre,
	}
}

func ToBookDTOs(books []model.BookModel) []BookDTO {
	result := make([]BookDTO, 0, len(books))
	for _, b := range books {
		result = append(result, ToBookDTO(b))
	}
	return result
}
