package salaries

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSalariesRoutes(app *fiber.App) {
	salaries := app.Group("/api/salaries", auth.AuthMiddleware)

	salaries.Get("/", CalculateSalariesAPI)
}
