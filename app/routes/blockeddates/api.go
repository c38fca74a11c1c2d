package blockeddates

import (
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

// ListBlockedDatesAPI returns every blocked entry date. All roles may read
// it; the entry form needs the list to grey out closed cells.
func ListBlockedDatesAPI(c *fiber.Ctx) error {
	blocked, err := database.ListBlockedDates(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load blocked dates", "details": err.Error()})
	}

	list := make([]fiber.Map, 0, len(blocked))
	for _, b := range blocked {
		list = append(list, fiber.Map{
			"date":       b.DateString(),
			"platform":   b.Platform,
			"reason":     b.Reason,
			"created_by": b.CreatedBy,
			"created_at": b.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"blocked_dates": list})
}

// BlockDateAPI closes one date for token entry.
func BlockDateAPI(c *fiber.Ctx) error {
	type BlockRequest struct {
		Date     string `json:"date"`
		Platform string `json:"platform"`
		Reason   string `json:"reason"`
	}

	var req BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Date is required"})
	}
	if req.Platform == "" {
		req.Platform = string(models.BlockAllPlatforms)
	}
	if !models.ValidBlockedPlatform(req.Platform) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid platform"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
	}

	blocked := &models.BlockedDate{
		Date:      date,
		Platform:  models.BlockedPlatform(req.Platform),
		Reason:    req.Reason,
		CreatedBy: c.Locals("user_email").(string),
	}

	if err := database.CreateBlockedDate(config.GetDB(), blocked); err != nil {
		if err == database.ErrDateAlreadyBlocked {
			return c.Status(409).JSON(fiber.Map{"error": "Date already blocked for this platform"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to block date", "details": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Date blocked successfully"})
}

// UnblockDateAPI reopens one date for token entry.
func UnblockDateAPI(c *fiber.Ctx) error {
	dateParam := c.Query("date")
	if dateParam == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Date is required"})
	}
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
	}

	platform := c.Query("platform", string(models.BlockAllPlatforms))
	if !models.ValidBlockedPlatform(platform) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid platform"})
	}

	if err := database.DeleteBlockedDate(config.GetDB(), date, models.BlockedPlatform(platform)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unblock date", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Date unblocked successfully"})
}
