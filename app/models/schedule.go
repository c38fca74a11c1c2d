package models

// ScheduleEntry is one apartment-day cell of the shift schedule. Dates are
// stored in DD.MM.YYYY as the schedule UI sends them.
type ScheduleEntry struct {
	ID               int    `json:"id" gorm:"primaryKey"`
	ApartmentName    string `json:"apartment_name" gorm:"not null"`
	ApartmentAddress string `json:"apartment_address"`
	WeekNumber       int    `json:"week_number" gorm:"not null"`
	Date             string `json:"date" gorm:"not null"`
	DayName          string `json:"day_name"`
	Time10           string `json:"time_10"`
	Time17           string `json:"time_17"`
	Time00           string `json:"time_00"`
}

// ScheduleDay is the per-day view returned to the client.
type ScheduleDay struct {
	Day   string            `json:"day"`
	Date  string            `json:"date"`
	Times map[string]string `json:"times"`
}

// ApartmentSchedule groups schedule days by apartment and week.
type ApartmentSchedule struct {
	Name    string                 `json:"name"`
	Address string                 `json:"address"`
	Weeks   map[int][]*ScheduleDay `json:"weeks"`
}
