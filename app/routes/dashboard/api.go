package dashboard

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetStatisticsAPI returns the dashboard blocks in one response.
func GetStatisticsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	performance, err := database.GetModelPerformance(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load model performance", "details": err.Error()})
	}

	revenue, err := database.GetMonthlyRevenue(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load monthly revenue", "details": err.Error()})
	}

	transactions, err := database.GetRecentTransactions(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load transactions", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"modelPerformance": performance,
		"monthlyRevenue":   revenue,
		"transactions":     transactions,
	})
}
