package seeds

import (
	"gorm.io/gorm"

	books "pustakaku_backend/internals/seeds/books"
	users "pustakaku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	books.SeedBooksFromJSON(db, "internals/seeds/books/data_books.json")
}
