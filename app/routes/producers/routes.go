package producers

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupProducerAssignmentsRoutes(app *fiber.App) {
	producers := app.Group("/api/producer-assignments", auth.AuthMiddleware)

	producers.Get("/", ListProducerAssignmentsAPI)

	manage := producers.Group("/", auth.RequireRole(models.RoleDirector))
	manage.Post("/", CreateProducerAssignmentAPI)
	manage.Delete("/:id", DeleteProducerAssignmentAPI)
}
