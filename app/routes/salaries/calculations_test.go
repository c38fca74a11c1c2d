package salaries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

var testDate = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func testUsers() []*models.User {
	return []*models.User{
		{ID: 1, Email: "model@agency.test", FullName: "Mia Model", Role: models.RoleContentMaker},
		{ID: 2, Email: "op@agency.test", FullName: "Olga Operator", Role: models.RoleOperator},
		{ID: 3, Email: "prod@agency.test", FullName: "Pavel Producer", Role: models.RoleProducer},
		{ID: 4, Email: "solo@agency.test", FullName: "Sana Solo", Role: models.RoleSoloMaker, SoloPercentage: 60},
	}
}

func testAssignments() []*models.OperatorAssignment {
	return []*models.OperatorAssignment{
		{ID: 1, OperatorEmail: "op@agency.test", ModelEmail: "model@agency.test", ModelID: 1, OperatorPercentage: 20},
		{ID: 2, OperatorEmail: "op@agency.test", ModelEmail: "solo@agency.test", ModelID: 4, OperatorPercentage: 20},
	}
}

func testProducerAssignments() []*models.ProducerAssignment {
	return []*models.ProducerAssignment{
		{ID: 1, ProducerEmail: "prod@agency.test", ModelEmail: "model@agency.test", AssignmentType: models.ProducerAssignsModel},
	}
}

// record yields a $60 gross check: 1200 income tokens at the 0.05 rate.
func record(modelID int, operatorID int) *models.FinanceRecord {
	r := &models.FinanceRecord{
		ModelID:  modelID,
		Date:     testDate,
		CbIncome: 1200,
	}
	if operatorID != 0 {
		r.OperatorID = &operatorID
	}
	return r
}

func TestGrossCheck(t *testing.T) {
	t.Run("prefers token income over raw tokens", func(t *testing.T) {
		r := &models.FinanceRecord{CbIncome: 1000, CbTokens: 99999}
		assert.InDelta(t, 50.0, GrossCheck(r), 1e-9)
	})

	t.Run("falls back to raw token count", func(t *testing.T) {
		r := &models.FinanceRecord{CbTokens: 400, SpTokens: 200}
		assert.InDelta(t, 30.0, GrossCheck(r), 1e-9)
	})

	t.Run("cam4 and transfers are added as-is", func(t *testing.T) {
		r := &models.FinanceRecord{Cam4Income: 25.5, Transfers: 10}
		assert.InDelta(t, 35.5, GrossCheck(r), 1e-9)
	})

	t.Run("per-platform mix", func(t *testing.T) {
		r := &models.FinanceRecord{CbIncome: 1000, SpTokens: 200, Cam4Income: 7}
		// 1000*0.05 + 200*0.05 + 7
		assert.InDelta(t, 67.0, GrossCheck(r), 1e-9)
	})
}

func TestGrossCheck_PlatformIndependence(t *testing.T) {
	// Each platform contributes independently: the check of a combined
	// record equals the sum of the single-platform checks.
	combined := &models.FinanceRecord{
		CbIncome:   900,
		SpIncome:   300,
		SodaTokens: 200,
		Cam4Income: 12.5,
		Transfers:  40,
	}
	parts := []*models.FinanceRecord{
		{CbIncome: 900},
		{SpIncome: 300},
		{SodaTokens: 200},
		{Cam4Income: 12.5},
		{Transfers: 40},
	}

	sum := 0.0
	for _, p := range parts {
		sum += GrossCheck(p)
	}
	assert.InDelta(t, sum, GrossCheck(combined), 1e-9)
}

func TestGrossCheck_Linearity(t *testing.T) {
	r := &models.FinanceRecord{
		CbIncome:   1200,
		SpIncome:   600,
		SodaIncome: 300,
		Cam4Income: 20,
		Transfers:  15,
	}
	doubled := &models.FinanceRecord{
		CbIncome:   2400,
		SpIncome:   1200,
		SodaIncome: 600,
		Cam4Income: 40,
		Transfers:  30,
	}

	assert.InDelta(t, 2*GrossCheck(r), GrossCheck(doubled), 1e-9)
	assert.GreaterOrEqual(t, GrossCheck(r), 0.0)
	assert.GreaterOrEqual(t, GrossCheck(&models.FinanceRecord{}), 0.0)
}

func TestCalculateSalaries_StandardSplit(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:               testUsers(),
		Assignments:         testAssignments(),
		ProducerAssignments: testProducerAssignments(),
		Finances:            []*models.FinanceRecord{record(1, 2)},
	})

	op := report.Operators["op@agency.test"]
	require.NotNil(t, op)
	assert.InDelta(t, 12.0, op.Total, 1e-9) // 20% of 60
	require.Len(t, op.Details, 1)
	assert.Equal(t, "2024-03-05", op.Details[0].Date)
	assert.InDelta(t, 60.0, op.Details[0].Check, 1e-9)

	model := report.Models["model@agency.test"]
	require.NotNil(t, model)
	assert.InDelta(t, 18.0, model.Total, 1e-9) // 30% of 60

	prod := report.Producers["prod@agency.test"]
	require.NotNil(t, prod)
	assert.InDelta(t, 6.0, prod.Total, 1e-9) // remaining 10% of the pool
}

func TestCalculateSalaries_SkipsZeroGross(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:       testUsers(),
		Assignments: testAssignments(),
		Finances: []*models.FinanceRecord{
			{ModelID: 1, Date: testDate}, // nothing earned
		},
	})

	assert.Empty(t, report.Operators)
	assert.Empty(t, report.Models)
	assert.Empty(t, report.Producers)
}

func TestCalculateSalaries_SkipsUnassignedModel(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:    testUsers(),
		Finances: []*models.FinanceRecord{record(1, 2)},
	})

	assert.Empty(t, report.Operators)
	assert.Empty(t, report.Models)
	assert.Empty(t, report.Producers)
}

func TestCalculateSalaries_SoloMakerPercentage(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:       testUsers(),
		Assignments: testAssignments(),
		Finances:    []*models.FinanceRecord{record(4, 2)},
	})

	model := report.Models["solo@agency.test"]
	require.NotNil(t, model)
	assert.InDelta(t, 36.0, model.Total, 1e-9) // 60% of 60

	op := report.Operators["op@agency.test"]
	require.NotNil(t, op)
	assert.InDelta(t, 12.0, op.Total, 1e-9)
}

func TestCalculateSalaries_SoloMakerDefaultPercentage(t *testing.T) {
	users := testUsers()
	users[3].SoloPercentage = 0

	report := CalculateSalaries(PayrollInput{
		Users:       users,
		Assignments: testAssignments(),
		Finances:    []*models.FinanceRecord{record(4, 2)},
	})

	model := report.Models["solo@agency.test"]
	require.NotNil(t, model)
	assert.InDelta(t, 30.0, model.Total, 1e-9) // falls back to 50%
}

func TestCalculateSalaries_NoOperatorCredited(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:               testUsers(),
		Assignments:         testAssignments(),
		ProducerAssignments: testProducerAssignments(),
		Finances:            []*models.FinanceRecord{record(1, 0)},
	})

	assert.Empty(t, report.Operators)

	// Producer drops to the flat 10% when nobody worked the shift.
	prod := report.Producers["prod@agency.test"]
	require.NotNil(t, prod)
	assert.InDelta(t, 6.0, prod.Total, 1e-9)

	model := report.Models["model@agency.test"]
	require.NotNil(t, model)
	assert.InDelta(t, 18.0, model.Total, 1e-9)
}

func TestCalculateSalaries_ProducerWorksOwnModel(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:               testUsers(),
		Assignments:         testAssignments(),
		ProducerAssignments: testProducerAssignments(),
		Finances:            []*models.FinanceRecord{record(1, 3)},
	})

	assert.Empty(t, report.Operators)

	prod := report.Producers["prod@agency.test"]
	require.NotNil(t, prod)
	assert.InDelta(t, 18.0, prod.Total, 1e-9) // 12 operator cut + 6 producer cut
	require.Len(t, prod.Details, 2)

	assert.Equal(t, models.NoteAsOperator, prod.Details[0].Note)
	assert.InDelta(t, 18.0, prod.Details[0].Amount, 1e-9)

	assert.Equal(t, models.NoteAlreadyPaidAsOperator, prod.Details[1].Note)
	assert.Zero(t, prod.Details[1].Amount)
}

func TestCalculateSalaries_ProducerCoversForeignShift(t *testing.T) {
	users := append(testUsers(),
		&models.User{ID: 5, Email: "prod2@agency.test", FullName: "Petra Producer", Role: models.RoleProducer})

	report := CalculateSalaries(PayrollInput{
		Users:               users,
		Assignments:         testAssignments(),
		ProducerAssignments: testProducerAssignments(),
		Finances:            []*models.FinanceRecord{record(1, 5)},
	})

	assert.Empty(t, report.Operators)

	covering := report.Producers["prod2@agency.test"]
	require.NotNil(t, covering)
	assert.InDelta(t, 12.0, covering.Total, 1e-9)
	require.Len(t, covering.Details, 1)
	assert.Equal(t, models.NoteAsOperator, covering.Details[0].Note)

	owner := report.Producers["prod@agency.test"]
	require.NotNil(t, owner)
	assert.InDelta(t, 6.0, owner.Total, 1e-9)
}

func TestCalculateSalaries_LegacyNameFallback(t *testing.T) {
	rec := record(1, 0)
	rec.OperatorName = "  Olga Operator "

	report := CalculateSalaries(PayrollInput{
		Users:       testUsers(),
		Assignments: testAssignments(),
		Finances:    []*models.FinanceRecord{rec},
	})

	op := report.Operators["op@agency.test"]
	require.NotNil(t, op)
	assert.InDelta(t, 12.0, op.Total, 1e-9)
}

func TestCalculateSalaries_NonOperatorWorkerNotCredited(t *testing.T) {
	rec := record(1, 1) // the model itself entered as the shift worker

	report := CalculateSalaries(PayrollInput{
		Users:       testUsers(),
		Assignments: testAssignments(),
		Finances:    []*models.FinanceRecord{rec},
	})

	assert.Empty(t, report.Operators)
	require.NotNil(t, report.Models["model@agency.test"])
}

func TestCalculateSalaries_TotalsAccumulate(t *testing.T) {
	report := CalculateSalaries(PayrollInput{
		Users:               testUsers(),
		Assignments:         testAssignments(),
		ProducerAssignments: testProducerAssignments(),
		Finances: []*models.FinanceRecord{
			record(1, 2),
			record(1, 2),
			record(1, 2),
		},
	})

	op := report.Operators["op@agency.test"]
	require.NotNil(t, op)
	assert.InDelta(t, 36.0, op.Total, 1e-9)
	assert.Len(t, op.Details, 3)

	// Every payout line is non-negative and the split never exceeds the check.
	for _, l := range report.Producers {
		for _, d := range l.Details {
			assert.GreaterOrEqual(t, d.Amount, 0.0)
			assert.LessOrEqual(t, d.Amount, d.Check)
		}
	}
}
