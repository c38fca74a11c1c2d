package database

import (
	"database/sql"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

const financeColumns = `id, model_id, date, cb_tokens, sp_tokens, soda_tokens, cam4_tokens,
	cb_income, sp_income, soda_income, cam4_income, transfers, operator_name, operator_id, has_shift`

func scanFinanceRecord(rows *sql.Rows) (*models.FinanceRecord, error) {
	r := &models.FinanceRecord{}
	err := rows.Scan(
		&r.ID, &r.ModelID, &r.Date, &r.CbTokens, &r.SpTokens, &r.SodaTokens, &r.Cam4Tokens,
		&r.CbIncome, &r.SpIncome, &r.SodaIncome, &r.Cam4Income, &r.Transfers,
		&r.OperatorName, &r.OperatorID, &r.HasShift,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// UpsertFinanceRecord writes one (model, date) row, overwriting by natural key.
func UpsertFinanceRecord(db *sql.DB, r *models.FinanceRecord) error {
	query := `
		INSERT INTO model_finances
			(model_id, date, cb_tokens, sp_tokens, soda_tokens, cam4_tokens,
			 cb_income, sp_income, soda_income, cam4_income, transfers,
			 operator_name, operator_id, has_shift, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (model_id, date)
		DO UPDATE SET
			cb_tokens = EXCLUDED.cb_tokens,
			sp_tokens = EXCLUDED.sp_tokens,
			soda_tokens = EXCLUDED.soda_tokens,
			cam4_tokens = EXCLUDED.cam4_tokens,
			cb_income = EXCLUDED.cb_income,
			sp_income = EXCLUDED.sp_income,
			soda_income = EXCLUDED.soda_income,
			cam4_income = EXCLUDED.cam4_income,
			transfers = EXCLUDED.transfers,
			operator_name = EXCLUDED.operator_name,
			operator_id = EXCLUDED.operator_id,
			has_shift = EXCLUDED.has_shift,
			updated_at = NOW()
	`
	_, err := db.Exec(query,
		r.ModelID, r.Date, r.CbTokens, r.SpTokens, r.SodaTokens, r.Cam4Tokens,
		r.CbIncome, r.SpIncome, r.SodaIncome, r.Cam4Income, r.Transfers,
		r.OperatorName, r.OperatorID, r.HasShift,
	)
	return err
}

// ListFinanceByModel returns a model's full finance history in date order.
func ListFinanceByModel(db *sql.DB, modelID int) ([]*models.FinanceRecord, error) {
	query := `SELECT ` + financeColumns + ` FROM model_finances WHERE model_id = $1 ORDER BY date ASC`

	rows, err := db.Query(query, modelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.FinanceRecord
	for rows.Next() {
		r, err := scanFinanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListFinanceByPeriod returns all finance rows with date inside [start, end].
func ListFinanceByPeriod(db *sql.DB, periodStart, periodEnd time.Time) ([]*models.FinanceRecord, error) {
	query := `SELECT ` + financeColumns + ` FROM model_finances WHERE date BETWEEN $1 AND $2 ORDER BY date ASC`

	rows, err := db.Query(query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.FinanceRecord
	for rows.Next() {
		r, err := scanFinanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// AggregateFinanceByDay sums finance rows per calendar day for the period.
func AggregateFinanceByDay(db *sql.DB, periodStart, periodEnd time.Time) ([]*models.DailyTotal, error) {
	query := `
		SELECT date,
			COALESCE(SUM(cb_tokens), 0),
			COALESCE(SUM(sp_tokens), 0),
			COALESCE(SUM(soda_tokens), 0),
			COALESCE(SUM(cam4_tokens), 0),
			COALESCE(SUM(cb_income), 0),
			COALESCE(SUM(sp_income), 0),
			COALESCE(SUM(soda_income), 0),
			COALESCE(SUM(cam4_income), 0),
			COALESCE(SUM(transfers), 0)
		FROM model_finances
		WHERE date BETWEEN $1 AND $2
		GROUP BY date
		ORDER BY date ASC
	`
	rows, err := db.Query(query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*models.DailyTotal
	for rows.Next() {
		t := &models.DailyTotal{}
		var day time.Time
		if err := rows.Scan(
			&day, &t.CbTokens, &t.SpTokens, &t.SodaTokens, &t.Cam4Tokens,
			&t.CbIncome, &t.SpIncome, &t.SodaIncome, &t.Cam4Income, &t.Transfers,
		); err != nil {
			return nil, err
		}
		t.Date = day.Format("02.01")
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// SummarizeFinancePeriod rolls the whole period up into one row.
func SummarizeFinancePeriod(db *sql.DB, periodStart, periodEnd time.Time) (*models.PeriodSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(cb_tokens), 0),
			COALESCE(SUM(sp_tokens), 0),
			COALESCE(SUM(soda_tokens), 0),
			COALESCE(SUM(cam4_tokens), 0),
			COALESCE(SUM(cb_income), 0),
			COALESCE(SUM(sp_income), 0),
			COALESCE(SUM(soda_income), 0),
			COALESCE(SUM(cam4_income), 0),
			COALESCE(SUM(transfers), 0)
		FROM model_finances
		WHERE date BETWEEN $1 AND $2
	`
	s := &models.PeriodSummary{}
	err := db.QueryRow(query, periodStart, periodEnd).Scan(
		&s.CbTokens, &s.SpTokens, &s.SodaTokens, &s.Cam4Tokens,
		&s.CbIncome, &s.SpIncome, &s.SodaIncome, &s.Cam4Income, &s.Transfers,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ClearModelFinances removes all finance rows for one model.
func ClearModelFinances(db *sql.DB, modelID int) (int64, error) {
	result, err := db.Exec(`DELETE FROM model_finances WHERE model_id = $1`, modelID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
