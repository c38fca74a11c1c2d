package tasks

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTasksRoutes(app *fiber.App) {
	tasks := app.Group("/api/tasks", auth.AuthMiddleware)

	tasks.Get("/", ListTasksAPI)
	tasks.Get("/assignees", ListAssigneesAPI)
	tasks.Post("/", auth.RequireRole(models.RoleProducer, models.RoleDirector), CreateTaskAPI)

	// /completed must be registered before /:id
	tasks.Delete("/completed", auth.RequireRole(models.RoleDirector), DeleteCompletedTasksAPI)

	tasks.Get("/:id/comments", ListCommentsAPI)
	tasks.Post("/:id/comments", AddCommentAPI)
	tasks.Put("/:id", UpdateTaskAPI)
	tasks.Delete("/:id", DeleteTaskAPI)
}
