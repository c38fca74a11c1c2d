package assignments

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App) {
	assignments := app.Group("/api/assignments", auth.AuthMiddleware)

	assignments.Get("/", ListAssignmentsAPI)

	manage := assignments.Group("/", auth.RequireRole(models.RoleProducer, models.RoleDirector))
	manage.Post("/", CreateAssignmentAPI)
	manage.Put("/", UpdatePercentageAPI)
	manage.Delete("/", DeleteAssignmentAPI)
}
