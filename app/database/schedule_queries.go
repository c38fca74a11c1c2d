package database

import (
	"database/sql"
	"time"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

// ListSchedule returns all schedule rows ordered for grouping by apartment.
func ListSchedule(db *sql.DB) ([]*models.ScheduleEntry, error) {
	query := `SELECT id, apartment_name, apartment_address, week_number, date, day_name, time_10, time_17, time_00
			  FROM schedule
			  ORDER BY apartment_name, week_number, date`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ScheduleEntry
	for rows.Next() {
		e := &models.ScheduleEntry{}
		if err := rows.Scan(
			&e.ID, &e.ApartmentName, &e.ApartmentAddress, &e.WeekNumber,
			&e.Date, &e.DayName, &e.Time10, &e.Time17, &e.Time00,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpsertScheduleDay writes one apartment-day cell, overwriting by natural key.
func UpsertScheduleDay(db *sql.DB, e *models.ScheduleEntry) error {
	query := `
		INSERT INTO schedule
			(apartment_name, apartment_address, week_number, date, day_name, time_10, time_17, time_00)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (apartment_name, apartment_address, date)
		DO UPDATE SET
			week_number = EXCLUDED.week_number,
			day_name = EXCLUDED.day_name,
			time_10 = EXCLUDED.time_10,
			time_17 = EXCLUDED.time_17,
			time_00 = EXCLUDED.time_00
	`
	_, err := db.Exec(query,
		e.ApartmentName, e.ApartmentAddress, e.WeekNumber, e.Date,
		e.DayName, e.Time10, e.Time17, e.Time00,
	)
	return err
}

// PurgeOldSchedule deletes schedule rows older than one week. Dates are
// stored as DD.MM.YYYY strings, so conversion happens in SQL.
func PurgeOldSchedule(db *sql.DB) error {
	oneWeekAgo := time.Now().AddDate(0, 0, -7)
	query := `DELETE FROM schedule WHERE TO_DATE(date, 'DD.MM.YYYY') < $1`
	_, err := db.Exec(query, oneWeekAgo)
	return err
}
