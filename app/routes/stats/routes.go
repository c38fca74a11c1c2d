package stats

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App) {
	stats := app.Group("/api/producer-stats", auth.AuthMiddleware)

	stats.Get("/", auth.RequireRole(models.RoleProducer, models.RoleDirector), GetProducerStatsAPI)
}
