package producers

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

func ListProducerAssignmentsAPI(c *fiber.Ctx) error {
	assignmentType := models.ProducerAssignmentType(c.Query("type"))
	if assignmentType != "" && assignmentType != models.ProducerAssignsModel && assignmentType != models.ProducerAssignsOperator {
		return c.Status(400).JSON(fiber.Map{"error": "type must be 'model' or 'operator'"})
	}

	assignments, err := database.ListProducerAssignments(config.GetDB(), c.Query("producer"), assignmentType)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load assignments", "details": err.Error()})
	}
	return c.JSON(assignments)
}

func CreateProducerAssignmentAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		ProducerEmail  string `json:"producerEmail"`
		ModelEmail     string `json:"modelEmail"`
		OperatorEmail  string `json:"operatorEmail"`
		AssignmentType string `json:"assignmentType"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ProducerEmail == "" {
		return c.Status(400).JSON(fiber.Map{"error": "producerEmail is required"})
	}

	assignmentType := models.ProducerAssignmentType(req.AssignmentType)
	switch assignmentType {
	case models.ProducerAssignsModel:
		if req.ModelEmail == "" {
			return c.Status(400).JSON(fiber.Map{"error": "modelEmail is required for model assignments"})
		}
	case models.ProducerAssignsOperator:
		if req.OperatorEmail == "" {
			return c.Status(400).JSON(fiber.Map{"error": "operatorEmail is required for operator assignments"})
		}
	default:
		return c.Status(400).JSON(fiber.Map{"error": "assignmentType must be 'model' or 'operator'"})
	}

	assignment := &models.ProducerAssignment{
		ProducerEmail:  req.ProducerEmail,
		ModelEmail:     req.ModelEmail,
		OperatorEmail:  req.OperatorEmail,
		AssignmentType: assignmentType,
		AssignedBy:     c.Locals("user_email").(string),
	}

	if err := database.CreateProducerAssignment(config.GetDB(), assignment); err != nil {
		if err == database.ErrDuplicateAssignment {
			return c.Status(409).JSON(fiber.Map{"error": "Model is already assigned to a producer"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func DeleteProducerAssignmentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assignment id"})
	}

	if err := database.DeleteProducerAssignment(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Assignment removed"})
}
