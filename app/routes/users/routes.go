package users

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	users := app.Group("/api/users", auth.AuthMiddleware)

	users.Get("/", ListUsersAPI)
	users.Post("/", auth.RequireRole(models.RoleDirector), CreateUserAPI)
	users.Put("/:id", auth.RequireRole(models.RoleDirector), UpdateUserAPI)
	users.Delete("/:id", auth.RequireRole(models.RoleDirector), DeleteUserAPI)
}
