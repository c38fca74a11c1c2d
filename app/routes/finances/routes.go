package finances

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFinancesRoutes(app *fiber.App) {
	finances := app.Group("/api/finances", auth.AuthMiddleware)

	finances.Get("/", GetModelFinancesAPI)
	finances.Post("/", SaveFinancesAPI)
	finances.Get("/aggregated", GetAggregatedFinancesAPI)
	finances.Get("/director", auth.RequireRole(models.RoleDirector), GetDirectorFinancesAPI)
	finances.Post("/director", auth.RequireRole(models.RoleDirector), SaveDirectorFinancesAPI)
	finances.Delete("/", auth.RequireRole(models.RoleDirector), ClearModelFinancesAPI)
}
