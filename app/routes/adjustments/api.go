package adjustments

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdjustmentsAPI returns a period's adjustments keyed by payee email.
func GetAdjustmentsAPI(c *fiber.Ctx) error {
	periodStart := c.Query("period_start")
	periodEnd := c.Query("period_end")
	if periodStart == "" || periodEnd == "" {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end required"})
	}

	rows, err := database.ListAdjustments(config.GetDB(), periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load adjustments", "details": err.Error()})
	}

	result := make(map[string]fiber.Map, len(rows))
	for _, a := range rows {
		result[a.Email] = fiber.Map{
			"advance":  a.Advance,
			"penalty":  a.Penalty,
			"expenses": a.Expenses,
		}
	}

	return c.JSON(result)
}

// UpsertAdjustmentAPI sets one adjustment field for a payee and period.
func UpsertAdjustmentAPI(c *fiber.Ctx) error {
	type UpsertRequest struct {
		Email       string  `json:"email"`
		Role        string  `json:"role"`
		PeriodStart string  `json:"period_start"`
		PeriodEnd   string  `json:"period_end"`
		Field       string  `json:"field"`
		Value       float64 `json:"value"`
	}

	var req UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Role == "" || req.PeriodStart == "" || req.PeriodEnd == "" || req.Field == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}
	if !models.ValidAdjustmentField(req.Field) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid field"})
	}

	err := database.UpsertAdjustmentField(
		config.GetDB(),
		req.Email, req.Role, req.PeriodStart, req.PeriodEnd,
		models.AdjustmentField(req.Field), req.Value,
		c.Locals("user_email").(string),
	)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save adjustment", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
