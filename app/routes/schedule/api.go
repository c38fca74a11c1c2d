package schedule

import (
	"fmt"
	"log"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetScheduleAPI returns the shift grid grouped by apartment and week.
func GetScheduleAPI(c *fiber.Ctx) error {
	entries, err := database.ListSchedule(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load schedule", "details": err.Error()})
	}

	apartments := make(map[string]*models.ApartmentSchedule)
	for _, e := range entries {
		key := fmt.Sprintf("%s_%s", e.ApartmentName, e.ApartmentAddress)
		apt, ok := apartments[key]
		if !ok {
			apt = &models.ApartmentSchedule{
				Name:    e.ApartmentName,
				Address: e.ApartmentAddress,
				Weeks:   make(map[int][]*models.ScheduleDay),
			}
			apartments[key] = apt
		}

		apt.Weeks[e.WeekNumber] = append(apt.Weeks[e.WeekNumber], &models.ScheduleDay{
			Day:  e.DayName,
			Date: e.Date,
			Times: map[string]string{
				"10:00": e.Time10,
				"17:00": e.Time17,
				"00:00": e.Time00,
			},
		})
	}

	return c.JSON(apartments)
}

// SaveScheduleDayAPI upserts one apartment-day cell and purges stale rows.
func SaveScheduleDayAPI(c *fiber.Ctx) error {
	var entry models.ScheduleEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if entry.ApartmentName == "" || entry.Date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "apartment_name and date are required"})
	}

	db := config.GetDB()

	// Entries older than one week are no longer shown anywhere
	if err := database.PurgeOldSchedule(db); err != nil {
		log.Printf("Failed to purge old schedule rows: %v", err)
	}

	if err := database.UpsertScheduleDay(db, &entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save schedule", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
