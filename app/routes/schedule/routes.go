package schedule

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/api/schedule", auth.AuthMiddleware)

	schedule.Get("/", GetScheduleAPI)
	schedule.Post("/", SaveScheduleDayAPI)
}
