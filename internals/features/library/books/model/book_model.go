package model

import (
	"pustakaku_backend/internals/helpers/dbtime"
)

// MaxISBNLength: the column fits 13 characters, but the validation rule
// rejects anything of 10 or more.
const MaxISBNLength = 9

// BookModel represents the books table.
type BookModel struct {
	BookID        int         `gorm:"column:book_id;primaryKey;autoIncrement" json:"bookID"`
	Title         string      `gorm:"column:title;size:255;not null" json:"title"`
	ISBN          string      `gorm:"column:isbn;size:13;uniqueIndex;not null" json:"isbn"`
	PublishedDate dbtime.Date `gorm:"column:published_date;not null" json:"published_date"`
	Genre         string      `gorm:"column:genre;size:100;not null" json:"genre"`
}

// TableName sets the table name for BookModel
func (BookModel) TableName() string {
	return "books"
}
