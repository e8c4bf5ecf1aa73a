package dto

import (
	"pustakaku_backend/internals/features/library/book_details/model"
)

// ============================
// Create & Update Request DTO
// ============================

type CreateBookDetailsRequest struct {
	BookID        int    `json:"bookID" validate:"required,gt=0"`
	NumberOfPages int    `json:"number_of_pages" validate:"required,gt=0"`
	Publisher     string `json:"publisher" validate:"required"`
	Language      string `json:"language" validate:"required"`
}

// UpdateBookDetailsRequest is a patch: nil fields are left untouched.
// The book reference itself is not movable.
type UpdateBookDetailsRequest struct {
	NumberOfPages *int    `json:"number_of_pages" validate:"omitempty,gt=0"`
	Publisher     *string `json:"publisher"`
	Language      *string `json:"language"`
}

// ============================
// Response DTO
// ============================

type BookDetailsDTO struct {
	DetailsID     int    `json:"detailsID"`
	BookID        int    `json:"bookID"`
	NumberOfPages int    `json:"number_of_pages"`
	Publisher     string `json:"publisher"`
	Language      string `json:"language"`
}

// ============================
// Converter
// ============================

func ToBookDetailsDTO(m model.BookDetailsModel) BookDetailsDTO {
	return BookDetailsDTO{
		DetailsID:     m.DetailsID,
		BookID:        m.BookID,
		NumberOfPages: m.NumberOfPages,
		Publisher:     m.Publisher,
		Language:      m.Language,
	}
}
