package users

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func ListUsersAPI(c *fiber.Ctx) error {
	role := c.Query("role")

	var (
		list []*models.User
		err  error
	)
	if role != "" {
		if !models.ValidUserRole(role) {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
		}
		list, err = database.ListUsersByRole(config.GetDB(), models.UserRole(role))
	} else {
		list, err = database.ListUsers(config.GetDB())
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users", "details": err.Error()})
	}

	return c.JSON(list)
}

func CreateUserAPI(c *fiber.Ctx) error {
	type CreateUserRequest struct {
		Email          string `json:"email"`
		Password       string `json:"password"`
		FullName       string `json:"fullName"`
		Role           string `json:"role"`
		SoloPercentage int    `json:"soloPercentage"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email, password and fullName are required"})
	}
	if !models.ValidUserRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}
	if req.SoloPercentage < 0 || req.SoloPercentage > 100 {
		return c.Status(400).JSON(fiber.Map{"error": "soloPercentage must be between 0 and 100"})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Email:          req.Email,
		Password:       hashed,
		FullName:       req.FullName,
		Role:           models.UserRole(req.Role),
		SoloPercentage: req.SoloPercentage,
		IsActive:       true,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUserRequest carries a partial user update. Pointer fields separate
// "absent" from a genuine zero value, so a solo percentage can be reset to 0.
type UpdateUserRequest struct {
	FullName       *string `json:"fullName"`
	Role           *string `json:"role"`
	SoloPercentage *int    `json:"soloPercentage"`
	IsActive       *bool   `json:"isActive"`
}

func applyUserUpdates(user *models.User, req UpdateUserRequest) string {
	if req.FullName != nil {
		if *req.FullName == "" {
			return "fullName cannot be empty"
		}
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		if !models.ValidUserRole(*req.Role) {
			return "Unknown role"
		}
		user.Role = models.UserRole(*req.Role)
	}
	if req.SoloPercentage != nil {
		if *req.SoloPercentage < 0 || *req.SoloPercentage > 100 {
			return "soloPercentage must be between 0 and 100"
		}
		user.SoloPercentage = *req.SoloPercentage
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	return ""
}

func UpdateUserAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := database.GetUserByID(config.GetDB(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if msg := applyUserUpdates(user, req); msg != "" {
		return c.Status(400).JSON(fiber.Map{"error": msg})
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user", "details": err.Error()})
	}

	return c.JSON(user)
}

func DeleteUserAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := database.DeleteUser(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
