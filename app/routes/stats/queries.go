package stats

import (
	"database/sql"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

// PeriodStats is one model's revenue and shift activity for a period.
// Income is the model-side 60% of gross revenue, matching the stats view
// the production team works with. Gross here sums the income fields only;
// rows that carry only raw token counts contribute nothing, unlike the
// payroll gross check which accepts the token count as a fallback.
type PeriodStats struct {
	TotalIncome    float64
	GrossRevenue   float64
	CbGrossRevenue float64
	SpGrossRevenue float64
	ShiftCount     int
}

func getModelPeriodStats(db *sql.DB, modelID int, start, end time.Time) (*PeriodStats, error) {
	query := `
		SELECT
			COALESCE(SUM(((cb_income + sp_income + soda_income) * 0.05 + cam4_income + transfers) * 0.6), 0),
			COALESCE(SUM((cb_income + sp_income + soda_income) * 0.05 + cam4_income + transfers), 0),
			COALESCE(SUM(cb_income * 0.05), 0),
			COALESCE(SUM(sp_income * 0.05), 0),
			COUNT(CASE WHEN has_shift = true THEN 1 END)
		FROM model_finances
		WHERE model_id = $1 AND date >= $2 AND date <= $3
	`
	s := &PeriodStats{}
	err := db.QueryRow(query, modelID, start, end).Scan(
		&s.TotalIncome, &s.GrossRevenue, &s.CbGrossRevenue, &s.SpGrossRevenue, &s.ShiftCount,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func getOperatorShiftCount(db *sql.DB, operator *models.User, start, end time.Time) (int, error) {
	// operator_id is authoritative; the name condition covers rows saved
	// before the column existed
	query := `
		SELECT COUNT(DISTINCT date)
		FROM model_finances
		WHERE (operator_id = $1 OR operator_name = $2) AND has_shift = true
		  AND date >= $3 AND date <= $4
	`
	var count int
	err := db.QueryRow(query, operator.ID, operator.FullName, start, end).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// listProducerModels returns the user profiles of all models assigned to
// one producer.
func listProducerModels(db *sql.DB, producerEmail string) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.full_name, u.role, u.solo_percentage
		FROM producer_assignments pa
		JOIN users u ON pa.model_email = u.email
		WHERE pa.producer_email = $1 AND pa.assignment_type = 'model'
	`
	return queryUserList(db, query, producerEmail)
}

// listProducerOperators returns the user profiles of all operators assigned
// to one producer.
func listProducerOperators(db *sql.DB, producerEmail string) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.full_name, u.role, u.solo_percentage
		FROM producer_assignments pa
		JOIN users u ON pa.operator_email = u.email
		WHERE pa.producer_email = $1 AND pa.assignment_type = 'operator'
	`
	return queryUserList(db, query, producerEmail)
}

// listProducers returns every producer that has at least one assignment.
func listProducers(db *sql.DB) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.full_name, u.role, u.solo_percentage
		FROM producer_assignments pa
		JOIN users u ON pa.producer_email = u.email
	`
	return queryUserList(db, query)
}

func queryUserList(db *sql.DB, query string, args ...interface{}) ([]*models.User, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.SoloPercentage); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
