// internals/middlewares/auth/token_auth.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "pustakaku_backend/internals/features/users/auth/service"
	userModel "pustakaku_backend/internals/features/users/user/model"
	helper "pustakaku_backend/internals/helpers"
)

const authScheme = "Token"

func extractTokenKey(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", errors.New("Authentication credentials were not provided.")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], authScheme) {
		return "", errors.New("Invalid token header.")
	}
	return parts[1], nil
}

// TokenAuth rejects the request before any handler runs unless a valid
// bearer credential maps to an active user. The user id lands in
// c.Locals("user_id").
func TokenAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, err := extractTokenKey(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		token, err := authService.LookupToken(db, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token.")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}

		var user userModel.UserModel
		if err := db.First(&user, "user_id = ?", token.UserID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token.")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User inactive or deleted.")
		}

		c.Locals("user_id", user.UserID)
		return c.Next()
	}
}
