package model

import (
	bookModel "pustakaku_backend/internals/features/library/books/model"
)

// BookDetailsModel represents the book_details table. The unique index on
// book_id enforces the one-to-one with books; the FK cascades when the
// book is deleted.
type BookDetailsModel struct {
	DetailsID     int                  `gorm:"column:details_id;primaryKey;autoIncrement" json:"detailsID"`
	BookID        int                  `gorm:"column:book_id;uniqueIndex;not null" json:"bookID"`
	Book          *bookModel.BookModel `gorm:"foreignKey:BookID;references:BookID;constraint:OnDelete:CASCADE" json:"-"`
	NumberOfPages int                  `gorm:"column:number_of_pages;not null" json:"number_of_pages"`
	Publisher     string               `gorm:"column:publisher;size:255;not null" json:"publisher"`
	Language      string               `gorm:"column:language;size:50;not null" json:"language"`
}

// TableName sets the table name for BookDetailsModel
func (BookDetailsModel) TableName() string {
	return "book_details"
}
