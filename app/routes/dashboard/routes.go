package dashboard

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/api/statistics", auth.AuthMiddleware)

	dashboard.Get("/", GetStatisticsAPI)
}
