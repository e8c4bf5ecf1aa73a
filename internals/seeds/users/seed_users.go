package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authService "pustakaku_backend/internals/features/users/auth/service"
	"pustakaku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsStaff  bool   `json:"is_staff"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		email := model.NormalizeEmail(data.Email)

		var existing model.UserModel
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User with email '%s' already exists, skipped.", email)
			continue
		}

		hashedPassword, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", email, err)
			continue
		}

		newUser := model.UserModel{
			Name:     data.Name,
			Email:    email,
			Password: hashedPassword,
			IsActive: true,
			IsStaff:  data.IsStaff,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to seed user '%s': %v", email, err)
			continue
		}

		if _, err := authService.GetOrCreateToken(db, newUser.UserID); err != nil {
			log.Printf("❌ Failed to issue token for '%s': %v", email, err)
		}
	}
}
