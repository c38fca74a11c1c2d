package adjustments

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdjustmentsRoutes(app *fiber.App) {
	adjustments := app.Group("/api/salary-adjustments", auth.AuthMiddleware)

	adjustments.Get("/", GetAdjustmentsAPI)
	adjustments.Put("/", auth.RequireRole(models.RoleProducer, models.RoleDirector), UpsertAdjustmentAPI)
}
