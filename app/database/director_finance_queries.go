package database

import (
	"database/sql"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

// GetDirectorFinance returns the director-level figures for one period, or
// a zero record when none was saved yet.
func GetDirectorFinance(db *sql.DB, periodStart, periodEnd time.Time) (*models.DirectorFinance, error) {
	df := &models.DirectorFinance{PeriodStart: periodStart, PeriodEnd: periodEnd}
	query := `SELECT id, expenses, issued_funds, updated_at
			  FROM director_finances
			  WHERE period_start = $1 AND period_end = $2`

	err := db.QueryRow(query, periodStart, periodEnd).Scan(&df.ID, &df.Expenses, &df.IssuedFunds, &df.UpdatedAt)
	if err == sql.ErrNoRows {
		return df, nil
	}
	if err != nil {
		return nil, err
	}
	return df, nil
}

// UpsertDirectorFinance writes both figures for one period.
func UpsertDirectorFinance(db *sql.DB, df *models.DirectorFinance) error {
	query := `INSERT INTO director_finances (period_start, period_end, expenses, issued_funds, updated_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (period_start, period_end)
			  DO UPDATE SET expenses = EXCLUDED.expenses,
							issued_funds = EXCLUDED.issued_funds,
							updated_at = NOW()
			  RETURNING id, expenses, issued_funds`

	return db.QueryRow(
		query, df.PeriodStart, df.PeriodEnd, df.Expenses, df.IssuedFunds,
	).Scan(&df.ID, &df.Expenses, &df.IssuedFunds)
}
