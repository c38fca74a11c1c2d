package stats

import (
	"database/sql"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/config"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/database"
	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/gofiber/fiber/v2"
)

// ModelStats is one model's current/previous period comparison.
type ModelStats struct {
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	CurrentIncome         float64 `json:"current_income"`
	PreviousIncome        float64 `json:"previous_income"`
	CurrentGrossRevenue   float64 `json:"current_gross_revenue"`
	PreviousGrossRevenue  float64 `json:"previous_gross_revenue"`
	CurrentCbGrossRevenue float64 `json:"current_cb_gross_revenue"`
	CurrentSpGrossRevenue float64 `json:"current_sp_gross_revenue"`
	CurrentShifts         int     `json:"current_shifts"`
	PreviousShifts        int     `json:"previous_shifts"`
	IsSoloMaker           bool    `json:"is_solo_maker"`
	SoloPercentage        int     `json:"solo_percentage"`
}

// OperatorStats is one operator's shift-count comparison.
type OperatorStats struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	CurrentShifts  int    `json:"current_shifts"`
	PreviousShifts int    `json:"previous_shifts"`
}

// AdjustmentsPair holds a period's manual adjustments and the previous
// period's for trend display.
type AdjustmentsPair struct {
	Current  []*models.SalaryAdjustment `json:"current"`
	Previous []*models.SalaryAdjustment `json:"previous"`
}

// ProducerGroup is the full stats block for one producer's team.
type ProducerGroup struct {
	ProducerName  string           `json:"producer_name,omitempty"`
	ProducerEmail string           `json:"producer_email,omitempty"`
	Models        []*ModelStats    `json:"models"`
	Operators     []*OperatorStats `json:"operators"`
	Adjustments   *AdjustmentsPair `json:"adjustments"`
}

// GetProducerStatsAPI returns the stats view for one producer, or for the
// whole production when called by a director.
func GetProducerStatsAPI(c *fiber.Ctx) error {
	periodStart, err := time.Parse("2006-01-02", c.Query("period_start"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end are required"})
	}
	periodEnd, err := time.Parse("2006-01-02", c.Query("period_end"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "period_start and period_end are required"})
	}

	role, _ := c.Locals("user_role").(string)
	email, _ := c.Locals("user_email").(string)

	db := config.GetDB()

	wholeProduction, scopeEmail := statsScope(models.UserRole(role), email, c.Query("user_email"))
	if wholeProduction {
		result, err := getAllProductionStats(db, periodStart, periodEnd)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to compute stats", "details": err.Error()})
		}
		return c.JSON(result)
	}

	producerName := ""
	if scopeEmail != email {
		producer, err := database.GetUserByEmail(db, scopeEmail)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Producer not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		producerName = producer.FullName
	}

	group, err := getProducerGroup(db, scopeEmail, producerName, periodStart, periodEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute stats", "details": err.Error()})
	}
	return c.JSON(group)
}

// statsScope decides whose stats a request covers. Directors see the whole
// production by default and may request one producer's view on their behalf;
// everyone else gets their own, whatever the query says.
func statsScope(role models.UserRole, ownEmail, requestedEmail string) (wholeProduction bool, email string) {
	if role == models.RoleDirector {
		if requestedEmail != "" {
			return false, requestedEmail
		}
		return true, ""
	}
	return false, ownEmail
}

func getProducerGroup(db *sql.DB, producerEmail, producerName string, start, end time.Time) (*ProducerGroup, error) {
	teamModels, err := listProducerModels(db, producerEmail)
	if err != nil {
		return nil, err
	}
	teamOperators, err := listProducerOperators(db, producerEmail)
	if err != nil {
		return nil, err
	}

	group := &ProducerGroup{
		ProducerName:  producerName,
		ProducerEmail: producerEmail,
		Models:        make([]*ModelStats, 0, len(teamModels)),
		Operators:     make([]*OperatorStats, 0, len(teamOperators)),
	}

	var emails []string
	for _, m := range teamModels {
		stats, err := buildModelStats(db, m, start, end)
		if err != nil {
			return nil, err
		}
		group.Models = append(group.Models, stats)
		emails = append(emails, m.Email)
	}

	for _, op := range teamOperators {
		stats, err := buildOperatorStats(db, op, start, end)
		if err != nil {
			return nil, err
		}
		group.Operators = append(group.Operators, stats)
		emails = append(emails, op.Email)
	}

	group.Adjustments, err = loadAdjustmentsPair(db, emails, start, end)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func getAllProductionStats(db *sql.DB, start, end time.Time) (fiber.Map, error) {
	producerUsers, err := listProducers(db)
	if err != nil {
		return nil, err
	}

	groups := make([]*ProducerGroup, 0, len(producerUsers)+1)
	var producerEmails []string
	for _, p := range producerUsers {
		group, err := getProducerGroup(db, p.Email, p.FullName, start, end)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
		producerEmails = append(producerEmails, p.Email)
	}

	// Solo makers have no producer; shown as a synthetic group of their own
	soloGroup, err := buildSoloMakersGroup(db, start, end)
	if err != nil {
		return nil, err
	}
	if soloGroup != nil {
		groups = append(groups, soloGroup)
	}

	// Producers themselves can carry adjustments; merge them into each group
	producerAdjustments, err := loadAdjustmentsPair(db, producerEmails, start, end)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		if group.ProducerEmail == soloMakersGroupEmail {
			continue
		}
		for _, a := range producerAdjustments.Current {
			if a.Email == group.ProducerEmail {
				group.Adjustments.Current = append(group.Adjustments.Current, a)
			}
		}
		for _, a := range producerAdjustments.Previous {
			if a.Email == group.ProducerEmail {
				group.Adjustments.Previous = append(group.Adjustments.Previous, a)
			}
		}
	}

	return fiber.Map{"producers": groups}, nil
}

const soloMakersGroupEmail = "solo_makers_group"

func buildSoloMakersGroup(db *sql.DB, start, end time.Time) (*ProducerGroup, error) {
	soloMakers, err := database.ListUsersByRole(db, models.RoleSoloMaker)
	if err != nil {
		return nil, err
	}
	if len(soloMakers) == 0 {
		return nil, nil
	}

	group := &ProducerGroup{
		ProducerName:  "Solo makers",
		ProducerEmail: soloMakersGroupEmail,
		Models:        make([]*ModelStats, 0, len(soloMakers)),
		Operators:     []*OperatorStats{},
	}

	var emails []string
	for _, solo := range soloMakers {
		stats, err := buildModelStats(db, solo, start, end)
		if err != nil {
			return nil, err
		}
		group.Models = append(group.Models, stats)
		emails = append(emails, solo.Email)
	}

	group.Adjustments, err = loadAdjustmentsPair(db, emails, start, end)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func buildModelStats(db *sql.DB, model *models.User, start, end time.Time) (*ModelStats, error) {
	current, err := getModelPeriodStats(db, model.ID, start, end)
	if err != nil {
		return nil, err
	}

	prevStart, prevEnd := PreviousPeriod(start)
	previous, err := getModelPeriodStats(db, model.ID, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	return &ModelStats{
		Name:                  model.FullName,
		Email:                 model.Email,
		CurrentIncome:         current.TotalIncome,
		PreviousIncome:        previous.TotalIncome,
		CurrentGrossRevenue:   current.GrossRevenue,
		PreviousGrossRevenue:  previous.GrossRevenue,
		CurrentCbGrossRevenue: current.CbGrossRevenue,
		CurrentSpGrossRevenue: current.SpGrossRevenue,
		CurrentShifts:         current.ShiftCount,
		PreviousShifts:        previous.ShiftCount,
		IsSoloMaker:           model.Role == models.RoleSoloMaker,
		SoloPercentage:        model.SoloPercentage,
	}, nil
}

func buildOperatorStats(db *sql.DB, operator *models.User, start, end time.Time) (*OperatorStats, error) {
	current, err := getOperatorShiftCount(db, operator, start, end)
	if err != nil {
		return nil, err
	}

	prevStart, prevEnd := PreviousPeriod(start)
	previous, err := getOperatorShiftCount(db, operator, prevStart, prevEnd)
	if err != nil {
		return nil, err
	}

	return &OperatorStats{
		Name:           operator.FullName,
		Email:          operator.Email,
		CurrentShifts:  current,
		PreviousShifts: previous,
	}, nil
}

func loadAdjustmentsPair(db *sql.DB, emails []string, start, end time.Time) (*AdjustmentsPair, error) {
	const dateFormat = "2006-01-02"

	current, err := database.ListAdjustmentsForEmails(db, emails, start.Format(dateFormat), end.Format(dateFormat))
	if err != nil {
		return nil, err
	}

	prevStart, prevEnd := PreviousPeriod(start)
	previous, err := database.ListAdjustmentsForEmails(db, emails, prevStart.Format(dateFormat), prevEnd.Format(dateFormat))
	if err != nil {
		return nil, err
	}

	pair := &AdjustmentsPair{Current: current, Previous: previous}
	if pair.Current == nil {
		pair.Current = []*models.SalaryAdjustment{}
	}
	if pair.Previous == nil {
		pair.Previous = []*models.SalaryAdjustment{}
	}
	return pair, nil
}
