package model

import (
	bookModel "pustakaku_backend/internals/features/library/books/model"
	userModel "pustakaku_backend/internals/features/users/user/model"
	"pustakaku_backend/internals/helpers/dbtime"
)

// BorrowedBookModel represents the borrowed_books table. return_date NULL
// means the loan is still open. Both FKs cascade, so deleting the user or
// the book removes the record.
type BorrowedBookModel struct {
	ID         int                  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     int                  `gorm:"column:user_id;not null;index" json:"userID"`
	User       *userModel.UserModel `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BookID     int                  `gorm:"column:book_id;not null;index" json:"bookID"`
	Book       *bookModel.BookModel `gorm:"foreignKey:BookID;references:BookID;constraint:OnDelete:CASCADE" json:"-"`
	BorrowDate dbtime.Date          `gorm:"column:borrow_date;not null" json:"borrow_date"`
	ReturnDate *dbtime.Date         `gorm:"column:return_date" json:"return_date"`
}

// TableName sets the table name for BorrowedBookModel
func (BorrowedBookModel) TableName() string {
	return "borrowed_books"
}
