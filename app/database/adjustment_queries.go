package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/lib/pq"
)

// ListAdjustments returns all salary adjustments for one payroll period.
func ListAdjustments(db *sql.DB, periodStart, periodEnd string) ([]*models.SalaryAdjustment, error) {
	query := `SELECT id, email, role, period_start, period_end, advance, penalty, expenses, updated_by, updated_at
			  FROM salary_adjustments
			  WHERE period_start = $1 AND period_end = $2`

	rows, err := db.Query(query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

// ListAdjustmentsForEmails returns a period's adjustments restricted to the
// given payees. An empty email list yields an empty result.
func ListAdjustmentsForEmails(db *sql.DB, emails []string, periodStart, periodEnd string) ([]*models.SalaryAdjustment, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	query := `SELECT id, email, role, period_start, period_end, advance, penalty, expenses, updated_by, updated_at
			  FROM salary_adjustments
			  WHERE email = ANY($1) AND period_start = $2 AND period_end = $3`

	rows, err := db.Query(query, pq.Array(emails), periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAdjustments(rows)
}

func scanAdjustments(rows *sql.Rows) ([]*models.SalaryAdjustment, error) {
	var adjustments []*models.SalaryAdjustment
	for rows.Next() {
		a := &models.SalaryAdjustment{}
		// period_start/period_end are DATE columns and arrive as time.Time
		var periodStart, periodEnd time.Time
		if err := rows.Scan(
			&a.ID, &a.Email, &a.Role, &periodStart, &periodEnd,
			&a.Advance, &a.Penalty, &a.Expenses, &a.UpdatedBy, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.SetPeriod(periodStart, periodEnd)
		adjustments = append(adjustments, a)
	}
	return adjustments, rows.Err()
}

// UpsertAdjustmentField sets one adjustment column for a payee and period.
// The field name is validated by the caller against the closed set; it is
// interpolated here because placeholders cannot name columns.
func UpsertAdjustmentField(db *sql.DB, email, role, periodStart, periodEnd string, field models.AdjustmentField, value float64, updatedBy string) error {
	if !models.ValidAdjustmentField(string(field)) {
		return fmt.Errorf("invalid adjustment field: %s", field)
	}

	query := fmt.Sprintf(`
		INSERT INTO salary_adjustments (email, role, period_start, period_end, %s, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (email, period_start, period_end)
		DO UPDATE SET %s = EXCLUDED.%s,
					  updated_by = EXCLUDED.updated_by,
					  updated_at = NOW()
	`, field, field, field)

	_, err := db.Exec(query, email, role, periodStart, periodEnd, value, updatedBy)
	return err
}
