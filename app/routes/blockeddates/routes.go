package blockeddates

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBlockedDatesRoutes(app *fiber.App) {
	blocked := app.Group("/api/blocked-dates", auth.AuthMiddleware)

	blocked.Get("/", ListBlockedDatesAPI)
	blocked.Post("/", auth.RequireRole(models.RoleDirector), BlockDateAPI)
	blocked.Delete("/", auth.RequireRole(models.RoleDirector), UnblockDateAPI)
}
