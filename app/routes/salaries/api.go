package salaries

import (
	"log"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CalculateSalariesAPI runs the payroll aggregation for one period and
// returns the operator, model and producer ledgers. The run is all-or-
// nothing: any query failure aborts it, nothing is ever persisted.
func CalculateSalariesAPI(c *fiber.Ctx) error {
	periodStart, err := time.Parse("2006-01-02", c.Query("period_start"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end are required"})
	}
	periodEnd, err := time.Parse("2006-01-02", c.Query("period_end"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end are required"})
	}

	runID := uuid.NewString()
	db := config.GetDB()

	users, err := database.ListUsersByRole(db,
		models.RoleOperator, models.RoleProducer, models.RoleContentMaker, models.RoleSoloMaker)
	if err != nil {
		log.Printf("Salary run %s: loading users failed: %v", runID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load users", "details": err.Error()})
	}

	assignments, err := database.ListOperatorAssignments(db, "")
	if err != nil {
		log.Printf("Salary run %s: loading assignments failed: %v", runID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load assignments", "details": err.Error()})
	}

	producerAssignments, err := database.ListProducerAssignments(db, "", models.ProducerAssignsModel)
	if err != nil {
		log.Printf("Salary run %s: loading producer assignments failed: %v", runID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load producer assignments", "details": err.Error()})
	}

	finances, err := database.ListFinanceByPeriod(db, periodStart, periodEnd)
	if err != nil {
		log.Printf("Salary run %s: loading finances failed: %v", runID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load finances", "details": err.Error()})
	}

	log.Printf("Salary run %s: period %s..%s, %d finance records",
		runID, periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"), len(finances))

	report := CalculateSalaries(PayrollInput{
		Users:               users,
		Assignments:         assignments,
		ProducerAssignments: producerAssignments,
		Finances:            finances,
	})

	return c.JSON(report)
}
