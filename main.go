package main

import (
	"log"
	"os"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/adjustments"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/assignments"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/auth"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/blockeddates"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/dashboard"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/finances"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/producers"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/rates"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/salaries"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/schedule"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/stats"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/tasks"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/routes/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler returns every error as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Moscow time
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		log.Printf("Warning: Failed to load Europe/Moscow location, falling back to UTC+3: %v", err)
		time.Local = time.FixedZone("MSK", 3*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup users routes
	users.SetupUsersRoutes(app)

	// Setup finances routes
	finances.SetupFinancesRoutes(app)

	// Setup blocked entry date routes
	blockeddates.SetupBlockedDatesRoutes(app)

	// Setup operator assignment routes
	assignments.SetupAssignmentsRoutes(app)

	// Setup producer assignment routes
	producers.SetupProducerAssignmentsRoutes(app)

	// Setup schedule routes
	schedule.SetupScheduleRoutes(app)

	// Setup salary adjustment routes
	adjustments.SetupAdjustmentsRoutes(app)

	// Setup task routes
	tasks.SetupTasksRoutes(app)

	// Setup payroll routes
	salaries.SetupSalariesRoutes(app)

	// Setup producer stats routes
	stats.SetupStatsRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup exchange rate routes
	rates.SetupRatesRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
