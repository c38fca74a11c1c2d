package assignments

import (
	"database/sql"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

func ListAssignmentsAPI(c *fiber.Ctx) error {
	assignments, err := database.ListOperatorAssignments(config.GetDB(), c.Query("operator"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load assignments", "details": err.Error()})
	}
	return c.JSON(assignments)
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		OperatorEmail      string   `json:"operatorEmail"`
		ModelEmail         string   `json:"modelEmail"`
		OperatorPercentage *float64 `json:"operatorPercentage"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.OperatorEmail == "" || req.ModelEmail == "" {
		return c.Status(400).JSON(fiber.Map{"error": "operatorEmail and modelEmail are required"})
	}

	db := config.GetDB()

	model, err := database.GetUserByEmail(db, req.ModelEmail)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Model not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if model.Role != models.RoleContentMaker && model.Role != models.RoleSoloMaker {
		return c.Status(400).JSON(fiber.Map{"error": "User is not a model"})
	}

	percentage := 20.0
	if req.OperatorPercentage != nil {
		percentage = *req.OperatorPercentage
		if percentage < 0 || percentage > 30 {
			return c.Status(400).JSON(fiber.Map{"error": "Percentage must be between 0 and 30"})
		}
	}

	assignment := &models.OperatorAssignment{
		OperatorEmail:      req.OperatorEmail,
		ModelEmail:         req.ModelEmail,
		ModelID:            model.ID,
		OperatorPercentage: percentage,
		AssignedBy:         c.Locals("user_email").(string),
	}

	if err := database.CreateOperatorAssignment(db, assignment); err != nil {
		if err == database.ErrDuplicateAssignment {
			return c.Status(409).JSON(fiber.Map{"error": "Already assigned"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func UpdatePercentageAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		OperatorEmail      string   `json:"operatorEmail"`
		ModelEmail         string   `json:"modelEmail"`
		OperatorPercentage *float64 `json:"operatorPercentage"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.OperatorPercentage == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing operatorPercentage"})
	}
	if *req.OperatorPercentage < 0 || *req.OperatorPercentage > 30 {
		return c.Status(400).JSON(fiber.Map{"error": "Percentage must be between 0 and 30"})
	}

	err := database.UpdateOperatorPercentage(config.GetDB(), req.OperatorEmail, req.ModelEmail, *req.OperatorPercentage)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update percentage", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Percentage updated successfully"})
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	type DeleteRequest struct {
		OperatorEmail string `json:"operatorEmail"`
		ModelEmail    string `json:"modelEmail"`
	}

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.DeleteOperatorAssignment(config.GetDB(), req.OperatorEmail, req.ModelEmail); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Assignment removed"})
}
