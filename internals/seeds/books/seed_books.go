package books

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"pustakaku_backend/internals/features/library/books/model"
	"pustakaku_backend/internals/helpers/dbtime"
)

type BookSeed struct {
	Title         string `json:"title"`
	ISBN          string `json:"isbn"`
	PublishedDate string `json:"published_date"`
	Genre         string `json:"genre"`
}

func SeedBooksFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading book seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var inputs []BookSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		if len(data.ISBN) > model.MaxISBNLength {
			log.Printf("❌ Skipping '%s': ISBN longer than %d characters.", data.Title, model.MaxISBNLength)
			continue
		}

		var existing model.BookModel
		if err := db.Where("isbn = ?", data.ISBN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Book with ISBN '%s' already exists, skipped.", data.ISBN)
			continue
		}

		published, err := dbtime.Parse(data.PublishedDate)
		if err != nil {
			log.Printf("❌ Skipping '%s': bad published_date: %v", data.Title, err)
			continue
		}

		newBook := model.BookModel{
			Title:         data.Title,
			ISBN:          data.ISBN,
			PublishedDate: published,
			Genre:         data.Genre,
		}

		if err := db.Create(&newBook).Error; err != nil {
			log.Printf("❌ Failed to seed book '%s': %v", data.Title, err)
		}
	}
}
