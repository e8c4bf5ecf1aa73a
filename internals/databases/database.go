package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pustakaku_backend/internals/configs"
	tokenModel "pustakaku_backend/internals/features/users/auth/model"
	userModel "pustakaku_backend/internals/features/users/user/model"

	detailsModel "pustakaku_backend/internals/features/library/book_details/model"
	bookModel "pustakaku_backend/internals/features/library/books/model"
	borrowModel "pustakaku_backend/internals/features/library/borrowings/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=pustakaku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
	}), &gorm.Config{
		TranslateError: true,
		Logger:         configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the schema. Cascade rules (user→tokens,
// user→borrowings, book→details, book→borrowings) live in the FK
// constraints the models declare.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&tokenModel.AuthTokenModel{},
		&bookModel.BookModel{},
		&detailsModel.BookDetailsModel{},
		&borrowModel.BorrowedBookModel{},
	)
}
