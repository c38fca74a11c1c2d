package stats

import "time"

// PreviousPeriod returns the payroll period immediately before one starting
// at the given date. Payroll runs on a semi-monthly cadence: a period
// starting on the 1st is preceded by the 16th..month-end of the prior month,
// anything else is preceded by the 1st..day-before-start of the same month.
// Ranges not aligned to the 1st/16th get these same bounds, which may not
// match their length.
func PreviousPeriod(start time.Time) (time.Time, time.Time) {
	prevEnd := start.AddDate(0, 0, -1)
	if start.Day() == 1 {
		prevStart := time.Date(prevEnd.Year(), prevEnd.Month(), 16, 0, 0, 0, 0, start.Location())
		return prevStart, prevEnd
	}
	prevStart := time.Date(prevEnd.Year(), prevEnd.Month(), 1, 0, 0, 0, 0, start.Location())
	return prevStart, prevEnd
}
