package models

import "time"

// SalaryAdjustment holds manual corrections applied on top of computed
// salaries for one payee and payroll period.
type SalaryAdjustment struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"not null;uniqueIndex:idx_adjustment_period" validate:"required,email"`
	Role        string    `json:"role" gorm:"not null"`
	PeriodStart string    `json:"period_start" gorm:"not null;type:date;uniqueIndex:idx_adjustment_period"`
	PeriodEnd   string    `json:"period_end" gorm:"not null;type:date;uniqueIndex:idx_adjustment_period"`
	Advance     float64   `json:"advance" gorm:"default:0"`
	Penalty     float64   `json:"penalty" gorm:"default:0"`
	Expenses    float64   `json:"expenses" gorm:"default:0"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SetPeriod stores the period bounds in the wire date format. The driver
// returns DATE columns as time.Time; serializing those directly would leak
// timestamps into a field every client treats as a plain date.
func (a *SalaryAdjustment) SetPeriod(start, end time.Time) {
	a.PeriodStart = start.Format("2006-01-02")
	a.PeriodEnd = end.Format("2006-01-02")
}
