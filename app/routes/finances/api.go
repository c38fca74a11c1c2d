package finances

import (
	"database/sql"
	"log"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

// DayFinanceRequest is one day of finance data as the entry form sends it.
type DayFinanceRequest struct {
	Date       string  `json:"date"`
	CbTokens   int     `json:"cb"`
	SpTokens   int     `json:"sp"`
	SodaTokens int     `json:"soda"`
	Cam4Tokens float64 `json:"cam4"`
	CbIncome   float64 `json:"cbIncome"`
	SpIncome   float64 `json:"spIncome"`
	SodaIncome float64 `json:"sodaIncome"`
	Cam4Income float64 `json:"cam4Income"`
	Transfers  float64 `json:"transfers"`
	Operator   string  `json:"operator"`
	Shift      bool    `json:"shift"`
}

// SaveFinancesAPI bulk-upserts finance rows for one model. The operator
// free-text name is resolved to a user id here, at entry time, so payroll
// can join on the id instead of re-matching names.
func SaveFinancesAPI(c *fiber.Ctx) error {
	type SaveRequest struct {
		ModelID int                 `json:"modelId"`
		Data    []DayFinanceRequest `json:"data"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.ModelID == 0 || len(req.Data) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "modelId and data are required"})
	}

	db := config.GetDB()

	dates := make([]time.Time, 0, len(req.Data))
	for _, day := range req.Data {
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date: " + day.Date})
		}
		dates = append(dates, date)
	}

	// Directors can close dates for entry; a save touching a closed
	// platform is rejected as a whole
	blockedByDate, err := database.GetBlockedPlatforms(db, dates)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}
	for _, day := range req.Data {
		if msg := blockedEntryDenial(day, blockedByDate[day.Date]); msg != "" {
			return c.Status(403).JSON(fiber.Map{"error": msg})
		}
	}

	saved := 0
	for i, day := range req.Data {
		date := dates[i]

		record := &models.FinanceRecord{
			ModelID:      req.ModelID,
			Date:         date,
			CbTokens:     day.CbTokens,
			SpTokens:     day.SpTokens,
			SodaTokens:   day.SodaTokens,
			Cam4Tokens:   day.Cam4Tokens,
			CbIncome:     day.CbIncome,
			SpIncome:     day.SpIncome,
			SodaIncome:   day.SodaIncome,
			Cam4Income:   day.Cam4Income,
			Transfers:    day.Transfers,
			OperatorName: day.Operator,
			HasShift:     day.Shift,
		}

		if day.Operator != "" {
			operator, err := database.GetUserByFullName(db, day.Operator)
			if err == nil {
				record.OperatorID = &operator.ID
			} else if err != sql.ErrNoRows {
				return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
			} else {
				log.Printf("No user matches operator name %q (model %d, %s)", day.Operator, req.ModelID, day.Date)
			}
		}

		if err := database.UpsertFinanceRecord(db, record); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save finances", "details": err.Error()})
		}
		saved++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"saved":   saved,
	})
}

// GetModelFinancesAPI returns the full finance history for one model.
func GetModelFinancesAPI(c *fiber.Ctx) error {
	modelID := c.QueryInt("modelId")
	if modelID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "modelId is required"})
	}

	records, err := database.ListFinanceByModel(config.GetDB(), modelID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load finances", "details": err.Error()})
	}

	data := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		data = append(data, fiber.Map{
			"date":       r.DateString(),
			"cb":         r.CbTokens,
			"sp":         r.SpTokens,
			"soda":       r.SodaTokens,
			"cam4":       r.Cam4Tokens,
			"cbIncome":   r.CbIncome,
			"spIncome":   r.SpIncome,
			"sodaIncome": r.SodaIncome,
			"cam4Income": r.Cam4Income,
			"transfers":  r.Transfers,
			"operator":   r.OperatorName,
			"shift":      r.HasShift,
		})
	}

	return c.JSON(data)
}

// GetAggregatedFinancesAPI returns per-day totals plus a period summary.
func GetAggregatedFinancesAPI(c *fiber.Ctx) error {
	periodStart, periodEnd, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	daily, err := database.AggregateFinanceByDay(db, periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to aggregate finances", "details": err.Error()})
	}

	summary, err := database.SummarizeFinancePeriod(db, periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to summarize finances", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"daily":   daily,
		"summary": summary,
	})
}

// ClearModelFinancesAPI removes every finance row for one model.
func ClearModelFinancesAPI(c *fiber.Ctx) error {
	modelID := c.QueryInt("modelId")
	if modelID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "modelId is required"})
	}

	deleted, err := database.ClearModelFinances(config.GetDB(), modelID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clear finances", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"deleted": deleted,
	})
}

// blockedEntryDenial returns the refusal message when a day's data writes
// into a blocked platform, or empty when the save is allowed. An "all" block
// closes the whole day; a platform block only rejects non-zero values for
// that platform's fields.
func blockedEntryDenial(day DayFinanceRequest, platforms []models.BlockedPlatform) string {
	for _, p := range platforms {
		switch p {
		case models.BlockAllPlatforms:
			return "Date " + day.Date + " is blocked for entry"
		case models.BlockChaturbate:
			if day.CbTokens != 0 || day.CbIncome != 0 {
				return "Date " + day.Date + " is blocked for Chaturbate entry"
			}
		case models.BlockStripchat:
			if day.SpTokens != 0 || day.SpIncome != 0 {
				return "Date " + day.Date + " is blocked for Stripchat entry"
			}
		}
	}
	return ""
}

// GetDirectorFinancesAPI returns the director-level expenses and issued
// funds for one period. Zeroes when nothing was saved yet.
func GetDirectorFinancesAPI(c *fiber.Ctx) error {
	periodStart, periodEnd, err := parsePeriod(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	df, err := database.GetDirectorFinance(config.GetDB(), periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load director finances", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"expenses":     df.Expenses,
		"issued_funds": df.IssuedFunds,
	})
}

// SaveDirectorFinancesAPI upserts both director-level figures for a period.
func SaveDirectorFinancesAPI(c *fiber.Ctx) error {
	type SaveRequest struct {
		PeriodStart string  `json:"period_start"`
		PeriodEnd   string  `json:"period_end"`
		Expenses    float64 `json:"expenses"`
		IssuedFunds float64 `json:"issued_funds"`
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end are required"})
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end are required"})
	}

	df := &models.DirectorFinance{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Expenses:    req.Expenses,
		IssuedFunds: req.IssuedFunds,
	}
	if err := database.UpsertDirectorFinance(config.GetDB(), df); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save director finances", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"expenses":     df.Expenses,
		"issued_funds": df.IssuedFunds,
	})
}

func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.Query("period_start"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(400, "period_start and period_end are required as YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("period_end"))
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(400, "period_start and period_end are required as YYYY-MM-DD")
	}
	return start, end, nil
}
