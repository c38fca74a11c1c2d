package models

import "time"

// FinanceRecord is one day of raw revenue data for one model.
// Token platforms (Chaturbate, Stripchat, CamSoda) may carry either a raw
// token count or a token-denominated income figure; Cam4 income and transfers
// are already in currency units. At most one record exists per (model, date).
type FinanceRecord struct {
	ID         int       `json:"id" gorm:"primaryKey"`
	ModelID    int       `json:"modelId" gorm:"not null;index"`
	Date       time.Time `json:"-" gorm:"not null;type:date;uniqueIndex:idx_model_date"`
	CbTokens   int       `json:"cb"`
	SpTokens   int       `json:"sp"`
	SodaTokens int       `json:"soda"`
	Cam4Tokens float64   `json:"cam4"`
	CbIncome   float64   `json:"cbIncome"`
	SpIncome   float64   `json:"spIncome"`
	SodaIncome float64   `json:"sodaIncome"`
	Cam4Income float64   `json:"cam4Income"`
	Transfers  float64   `json:"transfers"`
	// OperatorName is the free-text name entered for the shift. OperatorID is
	// resolved from it at save time and is the authoritative link; the name is
	// kept for legacy rows saved before the column existed.
	OperatorName string `json:"operator"`
	OperatorID   *int   `json:"operatorId,omitempty"`
	HasShift     bool   `json:"shift"`
}

// DateString returns the record date in the wire format used by the API.
func (r *FinanceRecord) DateString() string {
	return r.Date.Format("2006-01-02")
}

// DailyTotal is one day of summed finance data across all models.
type DailyTotal struct {
	Date       string  `json:"date"`
	CbTokens   int     `json:"cb"`
	SpTokens   int     `json:"sp"`
	SodaTokens int     `json:"soda"`
	Cam4Tokens float64 `json:"cam4"`
	CbIncome   float64 `json:"cbIncome"`
	SpIncome   float64 `json:"spIncome"`
	SodaIncome float64 `json:"sodaIncome"`
	Cam4Income float64 `json:"cam4Income"`
	Transfers  float64 `json:"transfers"`
}

// DirectorFinance holds the director-level expenses and issued funds for one
// payroll period. One row per period.
type DirectorFinance struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	PeriodStart time.Time `json:"-" gorm:"not null;type:date;uniqueIndex:idx_director_period"`
	PeriodEnd   time.Time `json:"-" gorm:"not null;type:date;uniqueIndex:idx_director_period"`
	Expenses    float64   `json:"expenses" gorm:"default:0"`
	IssuedFunds float64   `json:"issued_funds" gorm:"default:0"`
	UpdatedAt   time.Time `json:"-" gorm:"autoUpdateTime"`
}

// PeriodSummary is the whole-period roll-up of finance data.
type PeriodSummary struct {
	CbTokens   int     `json:"cbTokens"`
	SpTokens   int     `json:"spTokens"`
	SodaTokens int     `json:"sodaTokens"`
	Cam4Tokens float64 `json:"cam4Tokens"`
	CbIncome   float64 `json:"cbIncome"`
	SpIncome   float64 `json:"spIncome"`
	SodaIncome float64 `json:"sodaIncome"`
	Cam4Income float64 `json:"cam4Income"`
	Transfers  float64 `json:"transfers"`
}
