package rates

import (
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupRatesRoutes(app *fiber.App) {
	rates := app.Group("/api/rates", auth.AuthMiddleware)

	rates.Get("/usd", GetUSDRateAPI)
}
