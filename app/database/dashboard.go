package database

import (
	"database/sql"
	"time"
)

// ModelPerformance is one model's total recorded income for the dashboard.
type ModelPerformance struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Earnings float64 `json:"earnings"`
}

// MonthlyRevenue is one month of summed platform income.
type MonthlyRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// RecentTransaction is one recent day with recorded income.
type RecentTransaction struct {
	Date   string  `json:"date"`
	Model  string  `json:"model"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// GetModelPerformance returns the ten highest-earning models.
func GetModelPerformance(db *sql.DB) ([]*ModelPerformance, error) {
	query := `
		SELECT u.id, u.full_name,
			COALESCE(SUM(mf.cb_income + mf.sp_income + mf.soda_income + mf.cam4_income), 0) as earnings
		FROM users u
		LEFT JOIN model_finances mf ON u.id = mf.model_id
		WHERE u.role IN ('content_maker', 'solo_maker') AND u.deleted_at IS NULL
		GROUP BY u.id, u.full_name
		ORDER BY earnings DESC
		LIMIT 10
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performance []*ModelPerformance
	for rows.Next() {
		p := &ModelPerformance{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Earnings); err != nil {
			return nil, err
		}
		performance = append(performance, p)
	}
	return performance, rows.Err()
}

// GetMonthlyRevenue returns the six-month revenue series.
func GetMonthlyRevenue(db *sql.DB) ([]*MonthlyRevenue, error) {
	query := `
		SELECT
			TO_CHAR(DATE_TRUNC('month', mf.date), 'Mon') as month,
			COALESCE(SUM(mf.cb_income + mf.sp_income + mf.soda_income + mf.cam4_income), 0) as revenue,
			COUNT(DISTINCT CASE WHEN mf.has_shift THEN mf.id END) as bookings
		FROM model_finances mf
		WHERE mf.date >= CURRENT_DATE - INTERVAL '6 months'
		GROUP BY DATE_TRUNC('month', mf.date)
		ORDER BY DATE_TRUNC('month', mf.date) ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenue []*MonthlyRevenue
	for rows.Next() {
		r := &MonthlyRevenue{}
		if err := rows.Scan(&r.Month, &r.Revenue, &r.Bookings); err != nil {
			return nil, err
		}
		revenue = append(revenue, r)
	}
	return revenue, rows.Err()
}

// GetRecentTransactions returns the last month's days with recorded income.
func GetRecentTransactions(db *sql.DB) ([]*RecentTransaction, error) {
	query := `
		SELECT mf.date, u.full_name,
			COALESCE(mf.cb_income + mf.sp_income + mf.soda_income + mf.cam4_income, 0) as amount,
			CASE WHEN mf.has_shift THEN 'Paid' ELSE 'Pending' END as status
		FROM model_finances mf
		JOIN users u ON u.id = mf.model_id
		WHERE mf.date >= CURRENT_DATE - INTERVAL '30 days'
		  AND (mf.cb_income + mf.sp_income + mf.soda_income + mf.cam4_income) > 0
		ORDER BY mf.date DESC
		LIMIT 20
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*RecentTransaction
	for rows.Next() {
		t := &RecentTransaction{}
		var day time.Time
		if err := rows.Scan(&day, &t.Model, &t.Amount, &t.Status); err != nil {
			return nil, err
		}
		t.Date = day.Format("2006-01-02")
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
