package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"

	"github.com/lib/pq"
)

// ErrDateAlreadyBlocked is returned when a date is already blocked for the
// requested platform.
var ErrDateAlreadyBlocked = errors.New("date already blocked for this platform")

// ListBlockedDates returns every blocked date, newest first.
func ListBlockedDates(db *sql.DB) ([]*models.BlockedDate, error) {
	query := `SELECT id, blocked_date, platform, reason, created_by, created_at
			  FROM blocked_dates ORDER BY blocked_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocked []*models.BlockedDate
	for rows.Next() {
		b := &models.BlockedDate{}
		if err := rows.Scan(&b.ID, &b.Date, &b.Platform, &b.Reason, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, err
		}
		blocked = append(blocked, b)
	}
	return blocked, rows.Err()
}

// CreateBlockedDate blocks one date for one platform. The UNIQUE constraint
// rejects a second block for the same pair.
func CreateBlockedDate(db *sql.DB, b *models.BlockedDate) error {
	query := `INSERT INTO blocked_dates (blocked_date, platform, reason, created_by)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	err := db.QueryRow(query, b.Date, b.Platform, b.Reason, b.CreatedBy).Scan(&b.ID, &b.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return ErrDateAlreadyBlocked
	}
	return err
}

// DeleteBlockedDate unblocks one date for one platform.
func DeleteBlockedDate(db *sql.DB, date time.Time, platform models.BlockedPlatform) error {
	_, err := db.Exec(`DELETE FROM blocked_dates WHERE blocked_date = $1 AND platform = $2`, date, platform)
	return err
}

// GetBlockedPlatforms returns the blocked platforms for each of the given
// dates, keyed by the wire date format. Dates without blocks are absent.
func GetBlockedPlatforms(db *sql.DB, dates []time.Time) (map[string][]models.BlockedPlatform, error) {
	if len(dates) == 0 {
		return map[string][]models.BlockedPlatform{}, nil
	}

	iso := make([]string, len(dates))
	for i, d := range dates {
		iso[i] = d.Format("2006-01-02")
	}

	query := `SELECT blocked_date, platform FROM blocked_dates WHERE blocked_date = ANY($1::date[])`
	rows, err := db.Query(query, pq.Array(iso))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocked := map[string][]models.BlockedPlatform{}
	for rows.Next() {
		var date time.Time
		var platform models.BlockedPlatform
		if err := rows.Scan(&date, &platform); err != nil {
			return nil, err
		}
		key := date.Format("2006-01-02")
		blocked[key] = append(blocked[key], platform)
	}
	return blocked, rows.Err()
}
