package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "pustakaku_backend/internals/features/users/auth/service"
	"pustakaku_backend/internals/features/users/user/dto"
	"pustakaku_backend/internals/features/users/user/model"
	helper "pustakaku_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func hasRequiredError(err error) bool {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return true
			}
		}
	}
	return false
}

// emailTaken checks uniqueness of the normalized address, excluding
// excludeID for updates (0 = no exclusion). Exact match on the stored
// value.
func (ctrl *UserController) emailTaken(email string, excludeID int) (bool, error) {
	var count int64
	q := ctrl.DB.Model(&model.UserModel{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("user_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// =============================
// ➕ Register User
// =============================
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var body dto.RegisterUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		if hasRequiredError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "name, email and password are required in the request data.")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Enter a valid email address.")
	}

	email := model.NormalizeEmail(body.Email)
	taken, err := ctrl.emailTaken(email, 0)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if taken {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email address must be unique.")
	}

	hashed, err := authService.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Every self-registered account gets staff, never superuser.
	user := model.UserModel{
		Name:        body.Name,
		Email:       email,
		Password:    hashed,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: false,
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email address must be unique.")
		}
		log.Println("[ERROR] failed to create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := authService.GetOrCreateToken(ctrl.DB, user.UserID)
	if err != nil {
		log.Println("[ERROR] failed to issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "User registered successfully", dto.RegisteredUserDTO{
		UserDTO: dto.ToUserDTO(user),
		Token:   token,
	})
}

// =============================
// 📄 List Users (newest first)
// =============================
func (ctrl *UserController) List(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if total == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No users found.")
	}

	p := helper.ResolvePaging(c)
	if p.OutOfRange(total) {
		return helper.JsonError(c, fiber.StatusNotFound, "Invalid page.")
	}

	var users []model.UserModel
	if err := ctrl.DB.Order("user_id DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "users retrieved successfully.",
		dto.ToUserDTOs(users),
		helper.BuildPagination(total, p.Page, len(users)))
}

// =============================
// 🔍 Get User By ID
// =============================
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sorry, the user does not exist.")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Sorry, the user with ID %d does not exist.", id))
	}

	return helper.JsonOK(c, "User details retrieved successfully", dto.ToUserDTO(user))
}

// =============================
// 🔄 Update User (patch)
// =============================
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Enter a valid email address.")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if body.Email != nil {
		email := model.NormalizeEmail(*body.Email)
		taken, err := ctrl.emailTaken(email, user.UserID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if taken {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email address must be unique.")
		}
		user.Email = email
	}
	if body.Name != nil {
		user.Name = *body.Name
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email address must be unique.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserDTO(user))
}

// =============================
// 🗑️ Delete User
// =============================
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found.")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("User with ID %d not found.", id))
	}

	// Borrow records and the auth token go with the user via FK cascade.
	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
