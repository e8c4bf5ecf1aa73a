package dto

import (
	"pustakaku_backend/internals/features/library/borrowings/model"
	"pustakaku_backend/internals/helpers/dbtime"
)

// ============================
// Request DTO
// ============================

// BorrowDate format is checked by dbtime.Parse so a malformed date gets
// its own error message instead of the missing-fields one.
type BorrowBookRequest struct {
	UserID     int    `json:"userID" validate:"required,gt=0"`
	BookID     int    `json:"bookID" validate:"required,gt=0"`
	BorrowDate string `json:"borrow_date" validate:"required"`
}

// ReturnBookRequest carries the closing date. An absent field clears the
// stored return date; the assignment is unconditional.
type ReturnBookRequest struct {
	ReturnDate *string `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
}

// ============================
// Response DTO
// ============================

type BorrowedBookDTO struct {
	ID         int          `json:"id"`
	UserID     int          `json:"userID"`
	BookID     int          `json:"bookID"`
	BorrowDate dbtime.Date  `json:"borrow_date"`
	ReturnDate *dbtime.Date `json:"return_date"`
}

// ============================
// Converter
// ============================

func ToBorrowedBookDTO(m model.BorrowedBookModel) BorrowedBookDTO {
	return BorrowedBookDTO{
		ID:         m.ID,
		UserID:     m.UserID,
		BookID:     m.BookID,
		BorrowDate: m.BorrowDate,
		ReturnDate: m.ReturnDate,
	}
}
