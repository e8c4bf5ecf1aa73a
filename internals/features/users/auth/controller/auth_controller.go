package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "pustakaku_backend/internals/features/users/auth/service"
	userModel "pustakaku_backend/internals/features/users/user/model"
	helper "pustakaku_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type obtainTokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// =============================
// 🔑 Obtain Auth Token (login)
// =============================
func (ctrl *AuthController) ObtainAuthToken(c *fiber.Ctx) error {
	var body obtainTokenRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "email and password are required in the request data.")
	}

	email := userModel.NormalizeEmail(body.Email)

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unable to log in with provided credentials.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !user.IsActive || !authService.CheckPassword(user.Password, body.Password) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unable to log in with provided credentials.")
	}

	key, err := authService.GetOrCreateToken(ctrl.DB, user.UserID)
	if err != nil {
		log.Println("[ERROR] token issue failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": key})
}
